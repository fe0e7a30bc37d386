package videos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/throwlab/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilename = errors.New("invalid file name")
)

// DiskStore keeps uploaded files under rootPath, one folder per
// athlete and event type. Metadata lives in postgres, the store only
// moves bytes.
type DiskStore struct {
	rootPath string
	mutex    sync.Mutex
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0755); err != nil {
		return nil, fmt.Errorf("create root folder: %w", err)
	}
	return &DiskStore{
		rootPath: rootPath,
	}, nil
}

type SaveFileParams struct {
	AthleteID string
	Subfolder string
	Filename  string
	File      io.Reader
}

// Save writes the file under <root>/<athlete>/<subfolder>/ with a
// timestamped name and returns the path on disk.
func (ds *DiskStore) Save(ctx context.Context, params SaveFileParams) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.name", params.Filename))

	for _, part := range []string{params.AthleteID, params.Subfolder, params.Filename} {
		if part == "" || strings.Contains(part, "..") || strings.ContainsAny(part, `/\`) {
			return "", ErrInvalidFilename
		}
	}

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	folderPath := path.Join(ds.rootPath, params.AthleteID, params.Subfolder)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	newFileName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), params.Filename)
	newFilePath := path.Join(folderPath, newFileName)
	if _, err := os.Stat(newFilePath); err == nil {
		return "", fmt.Errorf("file already exists: %s", newFilePath)
	}

	dst, err := os.Create(newFilePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, params.File); err != nil {
		return "", err
	}

	log.Debugf("disk store: file saved: %s", newFilePath)
	return newFilePath, nil
}

// Delete removes the file at the given path. The path must lie within
// the store root.
func (ds *DiskStore) Delete(ctx context.Context, filePath string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !ds.Contains(filePath) {
		return ErrInvalidFilename
	}

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return err
	}

	log.Debugf("disk store: file deleted: %s", filePath)
	return nil
}

// Contains reports whether the given path lies within the store root.
func (ds *DiskStore) Contains(filePath string) bool {
	cleaned := path.Clean(filePath)
	return strings.HasPrefix(cleaned, ds.rootPath+string(os.PathSeparator))
}
