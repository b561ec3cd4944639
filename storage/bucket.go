package storage

import (
	"os"
	"server/db"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

const StorageLocationMedia = "/media"

type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string `gorm:"type:varchar(200)"`
	StorageType StorageType
	Path        string // Path on a drive or a prefix in a S3 bucket
	Endpoint    string // S3 endpoint, empty for AWS default
	Region      string
	AuthDetails string // Authentication details. In case of S3 bucket - "key:secret"
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		// Pre-create locations on disk
		if err = os.MkdirAll(b.Path+StorageLocationMedia, 0777); err != nil {
			return err
		}
	}
	return nil
}

// GetRemotePath prefixes the object key with the bucket's configured prefix
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return strings.TrimPrefix(path, "/")
	}
	return strings.Trim(b.Path, "/") + "/" + strings.TrimPrefix(path, "/")
}

// CreateSVC creates a S3 client for this bucket
func (b *Bucket) CreateSVC() *s3.S3 {
	creds := strings.SplitN(b.AuthDetails, ":", 2)
	if len(creds) != 2 {
		creds = []string{"", ""}
	}
	awsConfig := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(creds[0], creds[1], ""),
	}
	if b.Endpoint != "" {
		awsConfig.Endpoint = aws.String(b.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&awsConfig)))
}
