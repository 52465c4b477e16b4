package scenario_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"update-reconciler/core/scenario"
	"update-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectLoader_Load(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("GetObject", ctx, "scenarios", "move.yaml", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(moveSection)), nil)

	s, err := scenario.NewObjectLoader(client, "scenarios").Load(ctx, "move.yaml")
	require.NoError(t, err)

	assert.Equal(t, "move section", s.Name)
	client.AssertExpectations(t)
}

func TestObjectLoader_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("GetObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "scenarios", "gone.yaml", mock.Anything).
			Return(nil, errors.New("no such key"))

		_, err := scenario.NewObjectLoader(client, "scenarios").Load(ctx, "gone.yaml")
		assert.ErrorContains(t, err, "failed to get scenario scenarios/gone.yaml: no such key")
	})

	t.Run("Parse", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "scenarios", "bad.yaml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("current: [-3]")), nil)

		_, err := scenario.NewObjectLoader(client, "scenarios").Load(ctx, "bad.yaml")
		assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	})
}

func objectChan(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestObjectLoader_List(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "scenarios", minio.ListObjectsOptions{Prefix: "grid/", Recursive: true}).
		Return(objectChan(
			minio.ObjectInfo{Key: "grid/b.yml"},
			minio.ObjectInfo{Key: "grid/readme.md"},
			minio.ObjectInfo{Key: "grid/a.YAML"},
		))

	names, err := scenario.NewObjectLoader(client, "scenarios").List(ctx, "grid/")
	require.NoError(t, err)
	assert.Equal(t, []string{"grid/a.YAML", "grid/b.yml"}, names)
}

func TestObjectLoader_ListError(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "scenarios", mock.Anything).
		Return(objectChan(minio.ObjectInfo{Err: errors.New("access denied")}))

	_, err := scenario.NewObjectLoader(client, "scenarios").List(ctx, "")
	assert.ErrorContains(t, err, "failed to list scenarios: access denied")
}

func TestObjectLoader_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "scenarios").Return(true, nil)
		assert.NoError(t, scenario.NewObjectLoader(client, "scenarios").Check(ctx))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "scenarios").Return(false, nil)
		assert.ErrorContains(t, scenario.NewObjectLoader(client, "scenarios").Check(ctx), "bucket scenarios does not exist")
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "scenarios").Return(false, errors.New("timeout"))
		assert.ErrorContains(t, scenario.NewObjectLoader(client, "scenarios").Check(ctx), "failed to check bucket scenarios: timeout")
	})
}
