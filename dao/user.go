package dao

import (
	"Trophy/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询，调用方负责转小写
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否存在
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

// IsNicknameExist 判断昵称是否存在
func (u *Users) IsNicknameExist(ctx context.Context, nickname string) (bool, error) {
	return u.Repo.IsExist(ctx, "nickname = ?", nickname)
}

// TouchLogin 记录最近登录时间
func (u *Users) TouchLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := u.UpdateById(ctx, id, map[string]any{"last_login_at": at})
	if err != nil {
		return fmt.Errorf("dao.Users.TouchLogin error: %w", err)
	}
	return nil
}

// AddExperience 经验值原子增加
func (u *Users) AddExperience(ctx context.Context, id int64, delta int64) error {
	return u.incr(ctx, id, "profile_experience", delta)
}

// AddUploadCount 上传数原子增减，不小于 0
func (u *Users) AddUploadCount(ctx context.Context, id int64, delta int64) error {
	return u.incr(ctx, id, "profile_upload_count", delta)
}

func (u *Users) incr(ctx context.Context, id int64, column string, delta int64) error {
	res := u.Model(ctx).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(
			fmt.Sprintf("CASE WHEN %[1]s + ? < 0 THEN 0 ELSE %[1]s + ? END", column), delta, delta,
		))
	if res.Error != nil {
		return fmt.Errorf("dao.Users.incr %s error: %w", column, res.Error)
	}
	return nil
}

// SetRole 按邮箱设置角色
func (u *Users) SetRole(ctx context.Context, email string, role string) (int64, error) {
	res := u.Model(ctx).Where("email = ?", email).Update("role", role)
	return res.RowsAffected, res.Error
}
