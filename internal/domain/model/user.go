package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password,omitempty"`
	Role      Role    `json:"role"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Images    []Image `json:"images"`
}

// IsAdmin は大文字小文字を区別しない
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == "ADMIN" || u.Role == "Admin"
}

// サインインのフォーム
type Credentials struct {
	Email    string
	Password string
}

// アップロードするファイル
type UploadFile struct {
	Filename string
	Content  []byte
}

// サインアップのフォーム
type SignUp struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	Files           []UploadFile
}
