package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3FileStorage S3互換オブジェクトストレージ
type S3FileStorage struct {
	bucket string
	client *s3.Client
}

// NewS3FileStorage 引数の情報でS3ストレージを生成します
func NewS3FileStorage(bucket, region, endpoint, apiKey, apiSecret string, forcePathStyle bool) (*S3FileStorage, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(apiKey, apiSecret, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(opt *s3.Options) {
		if endpoint != "" {
			opt.BaseEndpoint = aws.String(endpoint)
		}
		opt.UsePathStyle = forcePathStyle
	})

	return &S3FileStorage{
		bucket: bucket,
		client: client,
	}, nil
}

// OpenFileByKey ファイルを取得します
func (fs *S3FileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	out, err := fs.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *S3FileStorage) SaveByKey(src io.Reader, key, name, contentType string) error {
	uploader := manager.NewUploader(fs.client)
	_, err := uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket:             aws.String(fs.bucket),
		Key:                aws.String(key),
		Body:               src,
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name))),
	})
	return err
}

// DeleteByKey ファイルを削除します
func (fs *S3FileStorage) DeleteByKey(key string) error {
	_, err := fs.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil && isNoSuchKey(err) {
		return ErrFileNotFound
	}
	return err
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}
