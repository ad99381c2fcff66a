package artifact

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/fs"
	"gitlab.com/rawpixel-vincent/hsts-provisioner/internal/logging"
)

type s3Downloader interface {
	DownloadWithContext(aws.Context, io.WriterAt, *s3.GetObjectInput, ...func(*s3manager.Downloader)) (int64, error)
}

type s3Fetcher struct {
	logger    logging.Logger
	fs        fs.FS
	awsRegion string
	bucket    string

	downloader s3Downloader

	// The AWS NewSession function was encapsulated into the sessionCreator
	// to make easier creating unit tests
	sessionCreator func(awsRegion string) (*session.Session, error)
}

// NewS3Fetcher is the constructor of a Fetcher reading artifacts from an S3
// bucket, using the identifier as the object key
func NewS3Fetcher(logger logging.Logger, filesystem fs.FS, awsRegion string, bucket string) Fetcher {
	f := new(s3Fetcher)

	f.logger = logger
	f.fs = filesystem
	f.awsRegion = awsRegion
	f.bucket = bucket
	f.sessionCreator = func(awsRegion string) (*session.Session, error) {
		return session.NewSession(
			&aws.Config{
				Region: aws.String(awsRegion),
			},
		)
	}

	return f
}

func (f *s3Fetcher) Init() error {
	sess, err := f.sessionCreator(f.awsRegion)
	if err != nil {
		return fmt.Errorf("couldn't create AWS session: %w", err)
	}

	f.downloader = s3manager.NewDownloader(sess)

	return nil
}

func (f *s3Fetcher) Fetch(ctx context.Context, identifier string, destination string) error {
	if f.downloader == nil {
		return NewDownloadError(identifier, ErrNotInitialized)
	}

	logger := f.logger.WithFields(logging.Fields{
		"bucket":      f.bucket,
		"key":         identifier,
		"destination": destination,
	})
	logger.Debug("[Fetch] Will download artifact from S3")

	out, err := f.fs.Create(destination)
	if err != nil {
		return NewDownloadError(identifier, fmt.Errorf("creating %q: %w", destination, err))
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(identifier),
	}

	written, err := f.downloader.DownloadWithContext(ctx, out, input)
	closeErr := out.Close()

	if err != nil {
		removePartial(logger, f.fs, destination)
		return NewDownloadError(identifier, fmt.Errorf("downloading s3://%s/%s: %w", f.bucket, identifier, err))
	}

	if closeErr != nil {
		removePartial(logger, f.fs, destination)
		return NewDownloadError(identifier, fmt.Errorf("writing %q: %w", destination, closeErr))
	}

	logger.
		WithField("bytes", written).
		Debug("[Fetch] Artifact downloaded from S3")

	return nil
}
