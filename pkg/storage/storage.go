package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tecnico-hr/config"
)

// Store 文件存储接口
// 上传文件以生成的相对路径为键落盘，URL 由 PublicBaseURL 拼接
type Store interface {
	// Save 写入文件内容，category 为子目录（如 documents / photos），
	// 返回存储相对路径
	Save(category, filename string, r io.Reader) (string, error)
	// Delete 删除存储对象，对象不存在时不报错
	Delete(path string) error
	// URL 返回可访问的下载地址
	URL(path string) string
}

// localStore 本地磁盘实现
type localStore struct {
	rootDir string
	baseURL string
	logger  *zap.Logger
}

// NewLocalStore 创建本地磁盘存储
func NewLocalStore(cfg *config.StorageConfig, logger *zap.Logger) (Store, error) {
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}
	return &localStore{
		rootDir: cfg.RootDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:  logger,
	}, nil
}

func (s *localStore) Save(category, filename string, r io.Reader) (string, error) {
	// 以 UUID 为前缀生成唯一路径，保留原始扩展名
	ext := filepath.Ext(filename)
	rel := filepath.Join(category, uuid.New().String()+ext)

	abs := filepath.Join(s.rootDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("创建子目录失败: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

func (s *localStore) Delete(path string) error {
	if path == "" {
		return nil
	}
	abs := filepath.Join(s.rootDir, filepath.FromSlash(path))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除文件失败: %w", err)
	}
	return nil
}

func (s *localStore) URL(path string) string {
	if path == "" {
		return ""
	}
	return s.baseURL + "/" + filepath.ToSlash(path)
}
