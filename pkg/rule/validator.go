// Package rule 基于 go-playground/validator 的校验封装，使用独立实例避免影响 gin 的 binding 标签
package rule

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once

	// 与前端一致的宽松邮箱格式
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func initValidator() {
	inst = validator.New()
	inst.SetTagName("rule")
	_ = inst.RegisterValidation("mail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = inst.RegisterValidation("runes", func(fl validator.FieldLevel) bool {
		// runes=2-20 按字符而不是字节计数
		var lo, hi int
		if _, err := fmt.Sscanf(fl.Param(), "%d-%d", &lo, &hi); err != nil {
			return false
		}
		n := utf8.RuneCountInString(fl.Field().String())
		return n >= lo && n <= hi
	})
}

func lazyInit() {
	once.Do(initValidator)
}

// ValidateStruct 对结构体执行 rule 标签校验
func ValidateStruct(s any) error {
	lazyInit()

	return inst.Struct(s)
}

// ValidateVar 按规则校验单个变量，例如 ValidateVar("a@b.c", "mail")
func ValidateVar(field any, tag string) error {
	lazyInit()

	return inst.Var(field, tag)
}

// IsEmail 邮箱格式
func IsEmail(s string) bool {
	return ValidateVar(s, "required,mail") == nil
}

// RuneLen 字符数是否在区间内
func RuneLen(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
