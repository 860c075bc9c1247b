package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gallery "github.com/aguasmedia/gallery"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	// callTimeout bounds every round trip to the Drive API.
	callTimeout = 15 * time.Second

	listFields = "files(id, name, createdTime, modifiedTime, mimeType)"
)

// An Image describes one stored client image.
type Image struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
}

// Service lists and streams images from a single Drive folder on behalf of
// a read-only service account.
type Service struct {
	files    filesCaller
	folderID string
}

// filesCaller is the slice of *drive.FilesService the Service uses,
// injectable for tests.
type filesCaller interface {
	list(ctx context.Context, query string) ([]*gdrive.File, error)
	download(ctx context.Context, fileID string) (io.ReadCloser, error)
}

// NewService constructs a Service from the service-account credentials
// file, scoped to read-only access on the configured folder.
func NewService(ctx context.Context, credsFile, folderID string) (*Service, error) {
	if credsFile == "" || folderID == "" {
		return nil, fmt.Errorf(`%w: config cannot be ""`, gallery.ErrBadConfig)
	}

	b, err := os.ReadFile(credsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gallery.ErrBadConfig, err)
	}

	cfg, err := google.JWTConfigFromJSON(b, gdrive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gallery.ErrBadConfig, err)
	}

	svc, err := gdrive.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gallery.ErrBadConfig, err)
	}

	return &Service{files: driveFiles{svc.Files}, folderID: folderID}, nil
}

// ListClientImages fetches the descriptors of every image in the folder
// whose name starts with "<clientID>_".
func (s *Service) ListClientImages(ctx context.Context, clientID string) ([]Image, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	files, err := s.files.list(ctx, listQuery(s.folderID, clientID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", gallery.ErrUnexpected, err)
	}

	images := make([]Image, 0, len(files))
	for _, f := range files {
		// the contains query overmatches; keep true prefix matches only
		if !strings.HasPrefix(f.Name, clientID+"_") {
			continue
		}

		images = append(images, Image{
			ID:           f.Id,
			Name:         f.Name,
			URL:          ViewURL(f.Id),
			CreatedTime:  f.CreatedTime,
			ModifiedTime: f.ModifiedTime,
			MimeType:     f.MimeType,
		})
	}

	return images, nil
}

// Download opens a stream of the file's bytes. The caller owns closing it.
func (s *Service) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)

	body, err := s.files.download(ctx, fileID)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %s", gallery.ErrUnexpected, err)
	}

	return &cancelReadCloser{ReadCloser: body, cancel: cancel}, nil
}

// ViewURL is the public uc endpoint for viewing a Drive file by id.
func ViewURL(fileID string) string {
	return "https://drive.google.com/uc?id=" + fileID
}

// listQuery builds the files.list q expression scoping results to the
// folder and the client's name prefix.
func listQuery(folderID, clientID string) string {
	escaped := strings.ReplaceAll(clientID, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return fmt.Sprintf("'%s' in parents and name contains '%s_'", folderID, escaped)
}

// driveFiles adapts *gdrive.FilesService to filesCaller.
type driveFiles struct {
	svc *gdrive.FilesService
}

func (d driveFiles) list(ctx context.Context, query string) ([]*gdrive.File, error) {
	res, err := d.svc.List().Q(query).Fields(listFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return res.Files, nil
}

func (d driveFiles) download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	res, err := d.svc.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}

	return res.Body, nil
}

// cancelReadCloser ties the download context's cancel to stream close so
// the deadline keeps covering the read.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}
