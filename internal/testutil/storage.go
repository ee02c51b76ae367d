package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// FakeStorage 内存对象存储，SignedURL 返回 signed://<key>
type FakeStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	seq     int

	PutErr  error
	SignErr error
	// FailSign 中的对象键签名时返回错误
	FailSign map[string]bool
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		Objects:  make(map[string][]byte),
		FailSign: make(map[string]bool),
	}
}

func (s *FakeStorage) Put(_ context.Context, dir, filename, _ string, _ int64, r io.Reader) (string, error) {
	if s.PutErr != nil {
		return "", s.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	key := fmt.Sprintf("%s/%d-%s", dir, s.seq, filename)
	s.Objects[key] = data
	return key, nil
}

func (s *FakeStorage) SignedURL(_ context.Context, key string) (string, error) {
	if s.SignErr != nil {
		return "", s.SignErr
	}
	if s.FailSign[key] {
		return "", errors.New("sign failed")
	}
	return "signed://" + key, nil
}

// Count 已上传对象数
func (s *FakeStorage) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Objects)
}
