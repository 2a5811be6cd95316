package blob

import (
	"bytes"
	"context"
	"io"
	"mime"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	storage "github.com/supabase-community/storage-go"
	"go.uber.org/zap"

	cb "github.com/Astemirdum/school-library/pkg/circuit_breaker"
)

type SupabaseConfig struct {
	URL    string `envconfig:"SUPABASE_URL"`
	Key    string `envconfig:"SUPABASE_KEY" json:"-"`
	Bucket string `envconfig:"SUPABASE_BUCKET" default:"uploads"`
}

// supabaseClient is the part of *storage.Client in use.
type supabaseClient interface {
	UploadFile(bucketID, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
	RemoveFile(bucketID string, paths []string) ([]storage.FileUploadResponse, error)
	ListFiles(bucketID, queryPath string, options storage.FileSearchOptions) ([]storage.FileObject, error)
	GetPublicUrl(bucketID, filePath string, urlOptions ...storage.UrlOptions) storage.SignedUrlResponse
}

type Supabase struct {
	client supabaseClient
	bucket string
	cb     cb.CircuitBreaker
	log    *zap.Logger
}

func NewSupabase(cfg SupabaseConfig, log *zap.Logger) *Supabase {
	client := storage.NewClient(cfg.URL+"/storage/v1", cfg.Key, nil)
	return newSupabase(client, cfg.Bucket, log)
}

func newSupabase(client supabaseClient, bucket string, log *zap.Logger) *Supabase {
	return &Supabase{
		client: client,
		bucket: bucket,
		cb:     cb.New(20, 10*time.Second, 0.5, 2),
		log:    log.Named("blob.supabase"),
	}
}

func (s *Supabase) Store(_ context.Context, folder, name string, data []byte) (string, error) {
	p := objectName(folder, name)
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := s.cb.Call(func() error {
		_, err := s.client.UploadFile(s.bucket, p, bytes.NewReader(data), storage.FileOptions{
			ContentType: &contentType,
		})
		return err
	})
	if err != nil {
		return "", errors.Wrap(err, "supabase upload")
	}
	s.log.Debug("stored", zap.String("path", p), zap.Int("size", len(data)))
	return p, nil
}

func (s *Supabase) Exists(_ context.Context, p string) (bool, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return false, err
	}
	dir, base := path.Split(cleaned)
	var found bool
	err = s.cb.Call(func() error {
		objs, err := s.client.ListFiles(s.bucket, dir, storage.FileSearchOptions{
			Limit:  10,
			Search: base,
		})
		if err != nil {
			return err
		}
		for _, o := range objs {
			if o.Name == base {
				found = true
				break
			}
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "supabase list")
	}
	return found, nil
}

func (s *Supabase) Delete(_ context.Context, p string) (bool, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return false, err
	}
	var removed int
	err = s.cb.Call(func() error {
		resp, err := s.client.RemoveFile(s.bucket, []string{cleaned})
		removed = len(resp)
		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "supabase remove")
	}
	return removed > 0, nil
}

func (s *Supabase) URL(p string) string {
	cleaned, err := cleanPath(p)
	if err != nil {
		return ""
	}
	return s.client.GetPublicUrl(s.bucket, cleaned).SignedURL
}
