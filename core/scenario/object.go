package scenario

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"update-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectLoader reads scenarios from an object storage bucket.
type ObjectLoader struct {
	client storage.Client
	bucket string
}

// NewObjectLoader creates a loader for bucket.
func NewObjectLoader(client storage.Client, bucket string) *ObjectLoader {
	return &ObjectLoader{client: client, bucket: bucket}
}

// Bucket returns the bucket the loader reads from.
func (l *ObjectLoader) Bucket() string {
	return l.bucket
}

// Check verifies the bucket exists.
func (l *ObjectLoader) Check(ctx context.Context) error {
	exists, err := l.client.BucketExists(ctx, l.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", l.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", l.bucket)
	}
	return nil
}

// List returns the sorted names of the YAML objects under prefix.
func (l *ObjectLoader) List(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var names []string
	for obj := range l.client.ListObjects(ctx, l.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list scenarios: %w", obj.Err)
		}
		switch strings.ToLower(path.Ext(obj.Key)) {
		case ".yaml", ".yml":
			names = append(names, obj.Key)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Load downloads and parses the scenario stored under name.
func (l *ObjectLoader) Load(ctx context.Context, name string) (*Scenario, error) {
	obj, err := l.client.GetObject(ctx, l.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario %s/%s: %w", l.bucket, name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s/%s: %w", l.bucket, name, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", l.bucket, name, err)
	}
	return s, nil
}
