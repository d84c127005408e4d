package rule

import "testing"

func TestIsEmail(t *testing.T) {
	good := []string{"h1@x.com", "a.b@c.d", "猎人@example.cn"}
	bad := []string{"", "h1", "h1@x", "h 1@x.com", "@x.com"}
	for _, s := range good {
		if !IsEmail(s) {
			t.Fatalf("IsEmail(%q) = false", s)
		}
	}
	for _, s := range bad {
		if IsEmail(s) {
			t.Fatalf("IsEmail(%q) = true", s)
		}
	}
}

func TestRunesRule(t *testing.T) {
	type form struct {
		Nickname string `rule:"runes=2-20"`
	}
	if err := ValidateStruct(form{Nickname: "猎人"}); err != nil {
		t.Fatalf("two runes should pass: %v", err)
	}
	if err := ValidateStruct(form{Nickname: "猎"}); err == nil {
		t.Fatal("one rune should fail")
	}
	if !RuneLen("一二三四五六七八九十一二三四五六七八九十", 2, 20) {
		t.Fatal("twenty runes should be within range")
	}
}
