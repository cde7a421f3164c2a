package model

const (
	PersonExistsMessage   = "The person ID exists"
	PersonNotFoundMessage = "This person doesn't exists!"
	LoginSuccessMessage   = "Login Successfully"
)

// Home is the body of GET /.
type Home struct {
	Greeting map[string]string `json:"greeting"`
}

// NewHome returns the fixed greeting.
func NewHome() Home {
	return Home{Greeting: map[string]string{"Hello": "World FastAPI."}}
}

// PersonDetail echoes the query of GET /person/detail.
type PersonDetail struct {
	Name *string `json:"name"`
	Age  int     `json:"age"`
}

// PersonDetailOut wraps PersonDetail under the "Person" key.
type PersonDetailOut struct {
	Person PersonDetail `json:"Person"`
}

// PersonLookup confirms a person ID exists.
type PersonLookup struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// PersonLookupOut wraps PersonLookup under the "Person" key.
type PersonLookupOut struct {
	Person PersonLookup `json:"Person"`
}

// PersonNotFound is the 404 body of GET /person/detail/{person_id}.
type PersonNotFound struct {
	Error   bool   `json:"Error"`
	Message string `json:"message"`
}

// LoginOut is the response of POST /login. The password is never part of it.
type LoginOut struct {
	Username string `json:"username" validate:"max=20" example:"facundo"`
	Message  string `json:"message" example:"Login Successfully"`
}

// NewLoginOut builds a LoginOut with the default success message.
func NewLoginOut(username string) LoginOut {
	return LoginOut{Username: username, Message: LoginSuccessMessage}
}

// ImageOut describes an uploaded image.
type ImageOut struct {
	Filename string  `json:"Filename"`
	Format   string  `json:"Format"`
	SizeKb   float64 `json:"Size(Kb)"`
}
