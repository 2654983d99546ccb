package s3

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const (
	ModelPrefix = "models/"
	PresignTTL  = 15 * time.Minute
)

var ErrObjectNotFound = errors.New("object not found")

type ItfS3 interface {
	ListModels() ([]string, error)
	PresignUrl(key string) (string, time.Time, error)
}

type s3Client struct {
	client     *s3.S3
	bucketName string
}

func New() (ItfS3, error) {
	bucket := os.Getenv("AWS_BUCKET_NAME")
	if bucket == "" {
		return nil, errors.New("AWS_BUCKET_NAME is not set")
	}

	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		bucketName: bucket,
	}, nil
}

// ListModels returns the file names of the GLB objects under models/.
func (s *s3Client) ListModels() ([]string, error) {
	var names []string

	err := s.client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
		Prefix: aws.String(ModelPrefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			if strings.HasSuffix(strings.ToLower(key), ".glb") {
				names = append(names, path.Base(key))
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

func (s *s3Client) PresignUrl(key string) (string, time.Time, error) {
	_, err := s.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.RequestFailure
		if errors.As(err, &aerr) && aerr.StatusCode() == 404 {
			return "", time.Time{}, ErrObjectNotFound
		}
		return "", time.Time{}, fmt.Errorf("head %s: %w", key, err)
	}

	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	expiresAt := time.Now().Add(PresignTTL)
	urlStr, err := req.Presign(PresignTTL)
	if err != nil {
		return "", time.Time{}, err
	}

	return urlStr, expiresAt, nil
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}
