package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFileStorage ローカルファイルストレージ
type LocalFileStorage struct {
	dirName string
}

// NewLocalFileStorage LocalFileStorageを生成します。ディレクトリが存在しない場合は作成します
func NewLocalFileStorage(dir string) (*LocalFileStorage, error) {
	if dir == "" {
		dir = "./storage"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalFileStorage{dirName: dir}, nil
}

// OpenFileByKey ファイルを取得します
func (lfs *LocalFileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	f, err := os.Open(lfs.getFilePath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (lfs *LocalFileStorage) SaveByKey(src io.Reader, key, _, _ string) error {
	file, err := os.Create(lfs.getFilePath(key))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, src)
	return err
}

// DeleteByKey ファイルを削除します
func (lfs *LocalFileStorage) DeleteByKey(key string) error {
	err := os.Remove(lfs.getFilePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

// GetDir ファイルの保存先を取得する
func (lfs *LocalFileStorage) GetDir() string {
	return lfs.dirName
}

func (lfs *LocalFileStorage) getFilePath(key string) string {
	return filepath.Join(lfs.dirName, filepath.Base(key))
}
