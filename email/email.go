package email

import (
	"fmt"
	"log"

	"flipbook/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
)

var client *ses.SES

func Init() {
	if config.EMAIL_FROM == "" {
		log.Println("email: EMAIL_FROM not set, sending disabled")
		return
	}
	awsConfig := aws.Config{Region: aws.String(config.SES_REGION)}
	if config.SES_ACCESS_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.SES_ACCESS_KEY, config.SES_SECRET_KEY, "")
	}
	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		log.Printf("email: cannot create SES session: %v", err)
		return
	}
	client = ses.New(sess)
}

// send is best-effort: a failed email must never fail the operation it is
// attached to, so errors are only logged
func send(to, subject, body string) {
	if client == nil {
		log.Printf("email: sending disabled, skipping %q to %s", subject, to)
		return
	}
	_, err := client.SendEmail(&ses.SendEmailInput{
		Source: aws.String(config.EMAIL_FROM),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &ses.Body{
				Text: &ses.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		log.Printf("email: cannot send %q to %s: %v", subject, to, err)
	}
}

// SendAdminReady notifies the buyer that their album is ready to manage
func SendAdminReady(to, albumTitle, adminURL string) {
	subject := "Your flipbook album is ready"
	body := fmt.Sprintf(`Hi!

Your album %q has been created.

Manage it, upload photos and invite your guests here:

%s

Keep this link private - anyone who has it can manage your album.
`, albumTitle, adminURL)
	send(to, subject, body)
}

// SendGuestInvite sends a guest their personal upload link
func SendGuestInvite(to, guestName, albumTitle, uploadURL string) {
	subject := fmt.Sprintf("You are invited to add photos to %q", albumTitle)
	body := fmt.Sprintf(`Hi %s!

You have been invited to share your photos in the album %q.

Upload them here:

%s
`, guestName, albumTitle, uploadURL)
	send(to, subject, body)
}
