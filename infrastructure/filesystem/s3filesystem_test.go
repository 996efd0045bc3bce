package filesystem

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = data
	f.contentTypes[*in.Key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{}
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
	}
	return out, nil
}

func TestS3FileSystem(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fs := NewS3FileSystemWithClient(fake, "exports-bucket")
	assert.Equal(t, "exports-bucket", fs.Location())

	require.NoError(t, fs.WriteFile(ctx, "timesheets/week-1.xlsx", []byte("xlsx"), "application/octet-stream"))
	require.NoError(t, fs.WriteFile(ctx, "other/file.txt", []byte("x"), "text/plain"))
	assert.Equal(t, "application/octet-stream", fake.contentTypes["timesheets/week-1.xlsx"])

	var buf bytes.Buffer
	require.NoError(t, fs.ReadFile(ctx, "timesheets/week-1.xlsx", &buf))
	assert.Equal(t, "xlsx", buf.String())

	keys, err := fs.ListFiles(ctx, "timesheets/")
	require.NoError(t, err)
	assert.Equal(t, []string{"timesheets/week-1.xlsx"}, keys)

	assert.Error(t, fs.ReadFile(ctx, "missing", &buf))
}
