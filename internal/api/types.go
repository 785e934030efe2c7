// Package api はHTTP境界で共有されるリクエスト/レスポンス型を定義します。
package api

// ErrorResponse はエラーレスポンスの共通ボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest は /login エンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse は認証済みユーザーの公開可能なフィールドのみを表します。
// パスワードハッシュは決して含めません。
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse はログイン成功時のレスポンスボディです。
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PhotoScreeningResponse は掲載写真スクリーニングの結果を表します。
type PhotoScreeningResponse struct {
	Adult    string `json:"adult"`
	Violence string `json:"violence"`
	Racy     string `json:"racy"`
	Flagged  bool   `json:"flagged"`
}

// DescriptionScreeningRequest は説明文スクリーニングのリクエストボディです。
type DescriptionScreeningRequest struct {
	Description string `json:"description" binding:"required"`
}

// DescriptionScreeningResponse は説明文スクリーニングの結果を表します。
type DescriptionScreeningResponse struct {
	Description string `json:"description"`
	Summary     string `json:"summary"`
}
