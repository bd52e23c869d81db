// Package media implements the admin file manager rooted at the public
// asset directory.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrInvalidPath путь выходит за пределы корневой директории
	ErrInvalidPath = errors.New("path escapes media root")
	// ErrNotDirectory запрошенный путь не является директорией
	ErrNotDirectory = errors.New("not a directory")
)

// FileInfo описание файла для клиента файлового менеджера
type FileInfo struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	IsDirectory  bool      `json:"isDirectory"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Logo запись списка логотипов
type Logo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Manager файловый менеджер, все операции ограничены корневой директорией
type Manager struct {
	root string
	log  *zap.Logger
}

// NewManager создает менеджер над указанным корнем, создавая его при
// необходимости
func NewManager(root string, log *zap.Logger) (*Manager, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &Manager{root: abs, log: log}, nil
}

// Root возвращает абсолютный путь корневой директории
func (m *Manager) Root() string {
	return m.root
}

// resolve превращает относительный путь клиента в абсолютный и
// отклоняет попытки выйти за пределы корня
func (m *Manager) resolve(rel string) (string, error) {
	rel = strings.TrimPrefix(strings.ReplaceAll(rel, "\\", "/"), "/")
	full := filepath.Join(m.root, filepath.FromSlash(rel))
	full = filepath.Clean(full)
	if full != m.root && !strings.HasPrefix(full, m.root+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return full, nil
}

// List возвращает содержимое директории
func (m *Manager) List(dir string) ([]FileInfo, error) {
	full, err := m.resolve(dir)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !stat.IsDir() {
		return nil, ErrNotDirectory
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			m.log.Warn("failed to stat entry", zap.String("name", entry.Name()), zap.Error(err))
			continue
		}
		files = append(files, FileInfo{
			Name:         entry.Name(),
			Path:         filepath.ToSlash(filepath.Join(dir, entry.Name())),
			IsDirectory:  entry.IsDir(),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}
	return files, nil
}

// Save записывает загруженный файл в указанную директорию и возвращает
// относительный путь сохраненного файла
func (m *Manager) Save(dir, name string, src io.Reader) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidPath
	}

	rel := filepath.ToSlash(filepath.Join(dir, name))
	full, err := m.resolve(rel)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	m.log.Info("file uploaded", zap.String("path", rel))
	return rel, nil
}

// Delete удаляет файл или директорию (рекурсивно)
func (m *Manager) Delete(path string) error {
	full, err := m.resolve(path)
	if err != nil {
		return err
	}
	if full == m.root {
		return ErrInvalidPath
	}

	stat, err := os.Stat(full)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if stat.IsDir() {
		err = os.RemoveAll(full)
	} else {
		err = os.Remove(full)
	}
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}

	m.log.Info("path deleted", zap.String("path", path), zap.Bool("directory", stat.IsDir()))
	return nil
}

// Rename переименовывает или перемещает файл внутри корня
func (m *Manager) Rename(oldPath, newPath string) (string, error) {
	oldFull, err := m.resolve(oldPath)
	if err != nil {
		return "", err
	}
	newFull, err := m.resolve(newPath)
	if err != nil {
		return "", err
	}

	if err := os.Rename(oldFull, newFull); err != nil {
		return "", fmt.Errorf("failed to rename: %w", err)
	}

	rel := strings.TrimPrefix(strings.ReplaceAll(newPath, "\\", "/"), "/")
	m.log.Info("path renamed", zap.String("from", oldPath), zap.String("to", rel))
	return rel, nil
}

// Copy копирует файл внутри корня и возвращает путь копии
func (m *Manager) Copy(path, destination string) (string, error) {
	srcFull, err := m.resolve(path)
	if err != nil {
		return "", err
	}
	dstFull, err := m.resolve(destination)
	if err != nil {
		return "", err
	}

	src, err := os.Open(srcFull)
	if err != nil {
		return "", fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstFull)
	if err != nil {
		return "", fmt.Errorf("failed to create destination: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy: %w", err)
	}

	rel := strings.TrimPrefix(strings.ReplaceAll(destination, "\\", "/"), "/")
	m.log.Info("file copied", zap.String("from", path), zap.String("to", rel))
	return rel, nil
}

// imageExtensions расширения, попадающие в список логотипов
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ListLogos возвращает файлы изображений из директории logos
func (m *Manager) ListLogos() ([]Logo, error) {
	full, err := m.resolve("logos")
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		if os.IsNotExist(err) {
			return []Logo{}, nil
		}
		return nil, fmt.Errorf("failed to read logos directory: %w", err)
	}

	logos := make([]Logo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}
		logos = append(logos, Logo{
			Name: entry.Name(),
			Path: "/logos/" + entry.Name(),
		})
	}
	return logos, nil
}
