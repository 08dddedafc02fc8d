package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BASE_URL     = "http://localhost:8080" // Used to build shareable admin/guest URLs
	BIND_ADDRESS = "0.0.0.0:8080"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	DEBUG_MODE   = true

	// Payment provider (Midtrans Snap)
	MIDTRANS_SERVER_KEY  = ""
	MIDTRANS_PRODUCTION  = false
	CHECKOUT_SUCCESS_URL = "" // Defaults to BASE_URL + "/checkout/thanks"
	CHECKOUT_CANCEL_URL  = "" // Defaults to BASE_URL + "/pricing"

	// Transactional email (AWS SES). Sending is disabled if EMAIL_FROM is empty
	SES_REGION     = "eu-west-1"
	SES_ACCESS_KEY = "" // Falls back to the default AWS credential chain when empty
	SES_SECRET_KEY = ""
	EMAIL_FROM     = ""

	// Object storage backing the client-side upload widget
	S3_BUCKET     = ""
	S3_REGION     = "eu-west-1"
	S3_ENDPOINT   = "" // For S3-compatible providers
	S3_PUBLIC_URL = "" // Public base URL for uploaded objects, e.g. a CDN domain
	S3_ACCESS_KEY = ""
	S3_SECRET_KEY = ""

	UPLOAD_MAX_FILE_SIZE = 25 * 1024 * 1024
	UPLOAD_MAX_BATCH     = 100 // Widget file-count limit when no quota applies
)

func init() {
	readEnvString("BASE_URL", &BASE_URL)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("MIDTRANS_SERVER_KEY", &MIDTRANS_SERVER_KEY)
	readEnvBool("MIDTRANS_PRODUCTION", &MIDTRANS_PRODUCTION)
	readEnvString("CHECKOUT_SUCCESS_URL", &CHECKOUT_SUCCESS_URL)
	readEnvString("CHECKOUT_CANCEL_URL", &CHECKOUT_CANCEL_URL)
	readEnvString("SES_REGION", &SES_REGION)
	readEnvString("SES_ACCESS_KEY", &SES_ACCESS_KEY)
	readEnvString("SES_SECRET_KEY", &SES_SECRET_KEY)
	readEnvString("EMAIL_FROM", &EMAIL_FROM)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_PUBLIC_URL", &S3_PUBLIC_URL)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvInt("UPLOAD_MAX_FILE_SIZE", &UPLOAD_MAX_FILE_SIZE)
	readEnvInt("UPLOAD_MAX_BATCH", &UPLOAD_MAX_BATCH)

	if CHECKOUT_SUCCESS_URL == "" {
		CHECKOUT_SUCCESS_URL = BASE_URL + "/checkout/thanks"
	}
	if CHECKOUT_CANCEL_URL == "" {
		CHECKOUT_CANCEL_URL = BASE_URL + "/pricing"
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
