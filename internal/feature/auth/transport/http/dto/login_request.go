// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// パスワードの空チェックはユースケース側で行います。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}
