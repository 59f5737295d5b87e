// Package avatar copies generated avatar images into Cloud Storage so
// profiles do not depend on the generator service staying up. Avatars are
// written once at registration and never replaced.
package avatar

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type Store struct {
	client *storage.Client
	bucket string
}

func NewStore(ctx context.Context, bucket, credentialsFile string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("avatar bucket is not set")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{client: client, bucket: bucket}, nil
}

// FallbackURL is the generated-avatar service URL, used directly when no
// bucket is configured or the copy fails.
func FallbackURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}

// URL returns the avatar URL for a new profile. A nil Store is valid and
// always yields the fallback URL.
func (s *Store) URL(ctx context.Context, uid, name string) string {
	fallback := FallbackURL(name)
	if s == nil || s.client == nil {
		return fallback
	}
	data, err := fetch(ctx, fallback)
	if err != nil {
		log.Printf("avatar: fetch for %s: %v", uid, err)
		return fallback
	}
	stored, err := s.upload(ctx, "avatars/"+uid+".png", data)
	if err != nil {
		log.Printf("avatar: upload for %s: %v", uid, err)
		return fallback
	}
	return stored
}

func fetch(ctx context.Context, imgURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("avatar source status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *Store) upload(ctx context.Context, objectPath string, data []byte) (string, error) {
	token := uuid.NewString()
	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = "image/png"
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		s.bucket, url.PathEscape(objectPath), token), nil
}
