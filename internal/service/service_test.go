package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDirectory struct{}

func (failingDirectory) Exists(context.Context, int) (bool, error) {
	return false, errors.New("directory unavailable")
}

func newPerson() model.Person {
	black := model.HairColorBlack

	return model.Person{
		PersonBase: model.PersonBase{
			FirstName: "Facundo",
			LastName:  "García",
			Age:       25,
			Email:     "facundo@example.com",
			HairColor: &black,
		},
		Password: "supersecret",
	}
}

func TestPersonCreate(t *testing.T) {
	svc := NewPersonService(testutil.NewServer(t, nil), repository.NewStaticDirectory())

	out := svc.Create(context.Background(), newPerson())

	assert.Equal(t, newPerson().PersonBase, out.PersonBase)
}

func TestPersonDetail(t *testing.T) {
	svc := NewPersonService(testutil.NewServer(t, nil), repository.NewStaticDirectory())
	name := "Rocío"

	out := svc.Detail(model.PersonDetailQuery{Name: &name, Age: 40})

	assert.Equal(t, &name, out.Person.Name)
	assert.Equal(t, 40, out.Person.Age)
}

func TestPersonLookup(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewServer(t, nil)
	svc := NewPersonService(s, repository.NewStaticDirectory(repository.DefaultPersonIDs...))

	t.Run("known", func(t *testing.T) {
		out, err := svc.Lookup(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, model.PersonLookupOut{Person: model.PersonLookup{ID: 3, Message: model.PersonExistsMessage}}, out)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := svc.Lookup(ctx, 6)

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "PERSON_NOT_FOUND", httpErr.Code)
		assert.Equal(t, model.PersonNotFound{Error: true, Message: model.PersonNotFoundMessage}, httpErr.Payload())
	})

	t.Run("directory failure", func(t *testing.T) {
		_, err := NewPersonService(s, failingDirectory{}).Lookup(ctx, 1)

		require.Error(t, err)
		var httpErr *errs.HTTPError
		assert.False(t, errors.As(err, &httpErr))
	})
}

func TestPersonUpdate(t *testing.T) {
	svc := NewPersonService(testutil.NewServer(t, nil), repository.NewStaticDirectory())
	location := model.Location{City: "Rosario", State: "Santa Fe", Country: "Argentina"}

	out := svc.Update(context.Background(), 9, newPerson(), location)

	assert.Len(t, out, 10)
	assert.Equal(t, "Facundo", out["first_name"])
	assert.Equal(t, "supersecret", out["password"])
	assert.Equal(t, "Rosario", out["city"])
	assert.Equal(t, "Argentina", out["country"])
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(testutil.NewServer(t, nil))

	out := svc.Login(context.Background(), model.LoginForm{Username: "facundo", Password: "secret"})

	assert.Equal(t, model.LoginOut{Username: "facundo", Message: model.LoginSuccessMessage}, out)
}

func TestContactSubmit(t *testing.T) {
	svc := NewContactService(testutil.NewServer(t, nil))
	ua := "curl/8.0"

	assert.Equal(t, &ua, svc.Submit(context.Background(), model.ContactForm{UserAgent: &ua}))
	assert.Nil(t, svc.Submit(context.Background(), model.ContactForm{}))
}

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

func TestUploadDescribe(t *testing.T) {
	svc := NewUploadService(testutil.NewServer(t, nil))

	tests := []struct {
		name string
		size int
		kb   float64
	}{
		{"empty", 0, 0},
		{"one kilobyte", 1024, 1},
		{"rounded", 1000, 0.98},
		{"one and a half", 1536, 1.5},
		{"exact half rounds away from zero", 128, 0.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := fileHeader(t, "photo.jpg", "image/jpeg", bytes.Repeat([]byte{'x'}, tt.size))

			out, err := svc.Describe(context.Background(), fh)
			require.NoError(t, err)

			assert.Equal(t, model.ImageOut{Filename: "photo.jpg", Format: "image/jpeg", SizeKb: tt.kb}, out)
		})
	}
}
