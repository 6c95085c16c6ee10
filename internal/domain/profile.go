package domain

// DefaultPhoto is the portrait asset expected next to the page.
const DefaultPhoto = "me.jpg"

// Profile is the presentation panel of the home page.
type Profile struct {
	// Name is the author's display name.
	Name string

	// Photo is the portrait path, relative to the site root.
	Photo string

	// PhotoAlt is the portrait's alt text.
	PhotoAlt string

	// Bio is the presentation text shown next to the photo.
	Bio string
}

// DefaultProfile is used when no profile is configured.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Tomás Esteves",
		Photo:    DefaultPhoto,
		PhotoAlt: "Me",
		Bio: "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Donec lacinia dictum justo ut tempor. " +
			"Etiam mattis suscipit ipsum, ut condimentum urna eleifend non. Nunc sed tincidunt odio, a dictum velit. " +
			"Suspendisse sagittis elementum erat, vitae ultrices ex dapibus vitae. Pellentesque placerat, lacus ac " +
			"molestie lobortis, turpis lorem interdum enim, id pharetra lacus sapien in leo.",
	}
}
