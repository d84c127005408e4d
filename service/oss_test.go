package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Trophy/config"
)

func TestOssDisabled(t *testing.T) {
	s := NewOssService(&config.OssConfig{Enabled: false})
	if s.Enabled() {
		t.Fatal("oss should be disabled")
	}
	if _, err := s.Archive(context.Background(), 1, "image/png", []byte("x")); !errors.Is(err, ErrOssDisabled) {
		t.Fatalf("err = %v, want ErrOssDisabled", err)
	}
}

func TestOssObjectKey(t *testing.T) {
	s := &OssService{Prefix: "originals"}
	at := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	if got := s.ObjectKey(42, "image/png", at); got != "originals/2026/10/16/42.png" {
		t.Fatalf("ObjectKey = %s", got)
	}
	if got := s.ObjectKey(42, "image/jpeg", at); got != "originals/2026/10/16/42.jpg" {
		t.Fatalf("ObjectKey = %s", got)
	}
}
