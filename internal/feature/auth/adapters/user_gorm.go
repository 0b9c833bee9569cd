// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/feature/auth/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for a unique key violation.
const pgUniqueViolation = "23505"

// credentialGorm はCredentialStoreインターフェースのGORM実装です。
type credentialGorm struct {
	db *gorm.DB
}

// credentialGormがCredentialStoreを実装していることをコンパイル時に検証します。
var _ usecase.CredentialStore = (*credentialGorm)(nil)

// NewCredentialStore は指定されたgorm.DB接続でcredentialGormの新しいインスタンスを生成します。
func NewCredentialStore(db *gorm.DB) *credentialGorm {
	return &credentialGorm{db: db}
}

// Get はメールアドレス（完全一致）でアカウントを取得します。
// 存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *credentialGorm) Get(ctx context.Context, email string) (*entity.Account, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Create は新しいアカウントを追加します。既存のドキュメントは上書きしません。
// 同じメールアドレスが既に存在する場合、usecase.ErrUserAlreadyExistsを返します。
func (r *credentialGorm) Create(ctx context.Context, a *entity.Account) error {
	if a == nil {
		return errors.New("account is nil")
	}
	if err := r.db.WithContext(ctx).Create(UserModelFromEntity(a)).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a unique key violation from Postgres or SQLite.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	// sqlite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
