package jobs

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"quizmaster/database"
	"quizmaster/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, fullName string) models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		Password:     "x",
		FsUniquifier: email,
		FullName:     fullName,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// fakeMailer records every send and can be told to fail for specific
// recipients.
type fakeMailer struct {
	sent    []sentMail
	failFor map[string]error
}

type sentMail struct {
	to      string
	subject string
	text    string
	html    string
}

func (f *fakeMailer) Send(to []string, subject, textBody, htmlBody string) error {
	recipient := ""
	if len(to) > 0 {
		recipient = to[0]
	}
	if err, ok := f.failFor[recipient]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{to: recipient, subject: subject, text: textBody, html: htmlBody})
	return nil
}

func (f *fakeMailer) recipients() []string {
	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.to)
	}
	return out
}

var errSMTPDown = errors.New("smtp: connection refused")
