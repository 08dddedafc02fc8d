package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse          = Response{}
	NotFoundResponse    = Response{"not found"}
	ForbiddenResponse   = Response{"access denied"}
	DBError1Response    = Response{"DB Error 1"}
	DBError2Response    = Response{"DB Error 2"}
	AlbumFullResponse   = Response{"this album has reached its photo limit"}
	InviteFullResponse  = Response{"you have reached your photo limit"}
	NoGuestUploads      = Response{"guest uploads are disabled for this album"}
	UpstreamErrResponse = Response{"something went wrong"}
)
