// 指示: miu200521358
// Package io_common は入出力共通のエラー型を提供する。
package io_common

import "fmt"

// IoErrorKind は入出力エラー種別を表す。
type IoErrorKind string

const (
	// IoErrorKindExtInvalid は拡張子不正を表す。
	IoErrorKindExtInvalid IoErrorKind = "ext_invalid"
	// IoErrorKindFileNotFound はファイル不存在を表す。
	IoErrorKindFileNotFound IoErrorKind = "file_not_found"
	// IoErrorKindParseFailed は解析失敗を表す。
	IoErrorKindParseFailed IoErrorKind = "parse_failed"
	// IoErrorKindWriteFailed は書き込み失敗を表す。
	IoErrorKindWriteFailed IoErrorKind = "write_failed"
)

// IoError は入出力エラーを表す。
type IoError struct {
	Kind    IoErrorKind
	Path    string
	Message string
	cause   error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	switch {
	case e.Message != "" && e.Path != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("入出力エラー(%s): %s", e.Kind, e.Path)
	}
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.cause
}

// NewIoExtInvalid は拡張子不正エラーを生成する。
func NewIoExtInvalid(path string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindExtInvalid, Path: path, Message: "未対応の拡張子です", cause: cause}
}

// NewIoFileNotFound はファイル不存在エラーを生成する。
func NewIoFileNotFound(path string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindFileNotFound, Path: path, Message: "ファイルが見つかりません", cause: cause}
}

// NewIoParseFailed は解析失敗エラーを生成する。
func NewIoParseFailed(message string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindParseFailed, Message: message, cause: cause}
}

// NewIoWriteFailed は書き込み失敗エラーを生成する。
func NewIoWriteFailed(message string, cause error) *IoError {
	return &IoError{Kind: IoErrorKindWriteFailed, Message: message, cause: cause}
}
