package export

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Clipboard записывает текст в буфер обмена.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener открывает ссылку во внешнем приложении (браузере).
type Opener interface {
	Open(url string) error
}

// SystemClipboard — буфер обмена операционной системы.
type SystemClipboard struct{}

// WriteAll копирует текст. Возвращает ошибку, если буфер недоступен
// (нет xclip/xsel, нет прав и т.п.).
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Browser открывает ссылки в браузере по умолчанию.
type Browser struct{}

// Open открывает url в новом окне браузера.
func (Browser) Open(url string) error {
	return browser.OpenURL(url)
}
