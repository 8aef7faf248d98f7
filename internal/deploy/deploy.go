// Package deploy uploads the built site to an S3 (or S3-compatible)
// bucket for the deploy command.
package deploy

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sitewinder-dev/sitewinder/internal/config"
	"github.com/sitewinder-dev/sitewinder/internal/errors"
)

// Uploader is the object-storage surface the deployer needs.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
}

// s3Uploader adapts an S3 client to Uploader.
type s3Uploader struct {
	client *s3.Client
	bucket string
}

func (u *s3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

// NewS3Uploader builds an uploader for the configured bucket.
// Credentials come from the standard AWS environment variables.
func NewS3Uploader(dc config.DeployConfig) (Uploader, error) {
	if dc.Bucket == "" {
		return nil, errors.New("E401")
	}

	awsCfg := aws.Config{
		Region: dc.Region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			creds := aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}
			if creds.AccessKeyID == "" {
				return aws.Credentials{}, errors.New("E402").
					WithDetail("AWS_ACCESS_KEY_ID is not set")
			}
			return creds, nil
		}),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if dc.Endpoint != "" {
			o.BaseEndpoint = aws.String(dc.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &s3Uploader{client: client, bucket: dc.Bucket}, nil
}

// Deployer pushes a local directory tree to object storage.
type Deployer struct {
	uploader Uploader
	prefix   string
	logf     func(format string, args ...any)
}

// NewDeployer creates a deployer writing under the given key prefix.
func NewDeployer(uploader Uploader, prefix string, logf func(format string, args ...any)) *Deployer {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Deployer{uploader: uploader, prefix: prefix, logf: logf}
}

// Deploy uploads every file under dir, keyed by its slash-separated
// path relative to dir, and returns the uploaded keys in order.
func (d *Deployer) Deploy(ctx context.Context, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.New("E403").WithDetail(dir + " does not exist or is not a directory")
	}

	var files []string
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}
	sort.Strings(files)

	var keys []string
	for _, p := range files {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return keys, errors.New("E402").Wrap(err)
		}
		key := d.prefix + filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return keys, errors.New("E402").Wrap(err)
		}
		ct := contentType(p)
		uploadErr := d.uploader.Upload(ctx, key, ct, f)
		f.Close()
		if uploadErr != nil {
			return keys, errors.New("E402").
				WithDetail("failed uploading " + key).
				Wrap(uploadErr)
		}
		d.logf("uploaded %s (%s)", key, ct)
		keys = append(keys, key)
	}
	return keys, nil
}

// contentType guesses a MIME type from the file extension.
func contentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	switch ext {
	case ".wasm":
		return "application/wasm"
	case ".map":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
