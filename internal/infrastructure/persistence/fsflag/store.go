package fsflag

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"newstock-notify/internal/domain/newstock"
)

// Store 把每個旗標存成 flag 目錄下的一個小檔案，檔名即旗標鍵。
type Store struct {
	dir string
}

// NewStore 建立檔案台帳；目錄在第一次寫入時才建立。
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// IsPushed 以檔案是否存在判斷已否推送；目錄不存在視為未推送。
func (s *Store) IsPushed(_ context.Context, kind newstock.FeedKind, date time.Time) (bool, error) {
	_, err := os.Stat(s.path(kind, date))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MarkPushed 寫入旗標檔；內容僅供人工查閱，程式只看檔案存在與否。
func (s *Store) MarkPushed(_ context.Context, kind newstock.FeedKind, date time.Time, note string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(kind, date), []byte(note), 0o644)
}

func (s *Store) path(kind newstock.FeedKind, date time.Time) string {
	return filepath.Join(s.dir, newstock.FlagKey(kind, date)+".txt")
}
