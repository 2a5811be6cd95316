package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Local struct {
	basePath string
	baseURL  string
	log      *zap.Logger
}

func NewLocal(basePath, baseURL string, log *zap.Logger) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create storage dir %s", basePath)
	}
	return &Local{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log.Named("blob.local"),
	}, nil
}

func (l *Local) Store(_ context.Context, folder, name string, data []byte) (string, error) {
	p := objectName(folder, name)
	full := filepath.Join(l.basePath, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errors.Wrap(err, "create folder")
	}

	tmp := full + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrap(err, "write blob")
	}
	if err := os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrap(err, "rename blob")
	}
	l.log.Debug("stored", zap.String("path", p), zap.Int("size", len(data)))
	return p, nil
}

func (l *Local) Exists(_ context.Context, p string) (bool, error) {
	full, err := l.fullPath(p)
	if err != nil {
		return false, err
	}
	st, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !st.IsDir(), nil
}

func (l *Local) Delete(_ context.Context, p string) (bool, error) {
	full, err := l.fullPath(p)
	if err != nil {
		return false, err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "remove blob")
	}
	return true, nil
}

func (l *Local) URL(p string) string {
	cleaned, err := cleanPath(p)
	if err != nil {
		return ""
	}
	return l.baseURL + "/" + cleaned
}

// Root is the directory served under the base URL.
func (l *Local) Root() string { return l.basePath }

func (l *Local) fullPath(p string) (string, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.basePath, filepath.FromSlash(cleaned)), nil
}
