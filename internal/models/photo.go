package models

// Photo kinds, used as filename prefixes in the photo store.
const (
	PhotoKindUser     = "user"
	PhotoKindPetition = "petition"
)

// PhotoExtensions lists the accepted photo file extensions in probe order.
var PhotoExtensions = []string{"jpg", "jpeg", "png", "gif"}

// PhotoContentTypes maps accepted Content-Type values to file extensions.
var PhotoContentTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// ContentTypeForExtension returns the MIME type served for a stored extension.
func ContentTypeForExtension(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	}
	return "application/octet-stream"
}
