package uploads

import (
	"errors"
	"log"
	"strconv"
	"time"

	"flipbook/config"
	"flipbook/models"
	"flipbook/utils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var s3Client *s3.S3

var AllowedTypes = []string{"image/jpeg", "image/png", "image/webp", "image/heic"}

func Init() {
	if config.S3_BUCKET == "" {
		log.Println("uploads: S3_BUCKET not set, direct uploads disabled")
		return
	}
	awsConfig := aws.Config{Region: aws.String(config.S3_REGION)}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.S3_ACCESS_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.S3_ACCESS_KEY, config.S3_SECRET_KEY, "")
	}
	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		log.Printf("uploads: cannot create S3 session: %v", err)
		return
	}
	s3Client = s3.New(sess)
}

// WidgetConfig is handed to the client-side upload widget; the server never
// receives file bytes itself
type WidgetConfig struct {
	Folder       string   `json:"folder"`
	AllowedTypes []string `json:"allowed_types"`
	MaxFiles     int      `json:"max_files"`
	MaxFileSize  int      `json:"max_file_size"`
}

// ConfigFor builds the widget configuration for a caller whose remaining
// quota is known (-1 means unbounded)
func ConfigFor(album *models.Album, remaining int) WidgetConfig {
	maxFiles := remaining
	if remaining < 0 || remaining > config.UPLOAD_MAX_BATCH {
		maxFiles = config.UPLOAD_MAX_BATCH
	}
	return WidgetConfig{
		Folder:       "albums/" + album.Slug,
		AllowedTypes: AllowedTypes,
		MaxFiles:     maxFiles,
		MaxFileSize:  config.UPLOAD_MAX_FILE_SIZE,
	}
}

type UploadURL struct {
	UploadURL string `json:"upload_url"`
	URL       string `json:"url"`
	AssetID   string `json:"asset_id"`
}

// NewUploadURL presigns a PUT for one object under the album's folder and
// returns the durable public URL the photo record will keep
func NewUploadURL(albumSlug, filename string) (UploadURL, error) {
	if s3Client == nil {
		return UploadURL{}, errors.New("uploads are not configured")
	}
	key := "albums/" + albumSlug + "/" +
		utils.Rand8BytesToBase62() + "_" + strconv.FormatInt(time.Now().UnixNano(), 10) +
		"_" + utils.Slugify(filename)
	req, _ := s3Client.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(config.S3_BUCKET),
		Key:    aws.String(key),
	})
	signed, err := req.Presign(15 * time.Minute)
	if err != nil {
		return UploadURL{}, err
	}
	public := config.S3_PUBLIC_URL
	if public == "" {
		public = "https://" + config.S3_BUCKET + ".s3." + config.S3_REGION + ".amazonaws.com"
	}
	return UploadURL{
		UploadURL: signed,
		URL:       public + "/" + key,
		AssetID:   key,
	}, nil
}
