package models

// CatalogBook is the simplified shape returned for both Google Books volumes
// and NYT bestseller entries. Google entries carry VolumeID, NYT entries ISBN.
type CatalogBook struct {
	VolumeID    string   `json:"volume_id,omitempty"`
	ISBN        string   `json:"isbn,omitempty"`
	Title       string   `json:"title,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// GoogleVolume is a volume as returned by the Google Books API.
type GoogleVolume struct {
	ID         string           `json:"id"`
	VolumeInfo GoogleVolumeInfo `json:"volumeInfo"`
}

// GoogleVolumeInfo holds the bibliographic part of a Google volume.
type GoogleVolumeInfo struct {
	Title       string           `json:"title"`
	Authors     []string         `json:"authors"`
	Publisher   string           `json:"publisher"`
	Categories  []string         `json:"categories"`
	Description string           `json:"description"`
	ImageLinks  GoogleImageLinks `json:"imageLinks"`
}

type GoogleImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

// GoogleVolumeList is the Google Books search response.
type GoogleVolumeList struct {
	TotalItems int            `json:"totalItems"`
	Items      []GoogleVolume `json:"items"`
}

// NYTBook is one entry of a New York Times bestseller list.
type NYTBook struct {
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publisher   string    `json:"publisher"`
	Description string    `json:"description"`
	BookImage   string    `json:"book_image"`
	ISBNs       []NYTISBN `json:"isbns"`
}

type NYTISBN struct {
	ISBN10 string `json:"isbn10"`
	ISBN13 string `json:"isbn13"`
}

// NYTList is the NYT "current list" response.
type NYTList struct {
	Status  string `json:"status"`
	Results struct {
		ListName string    `json:"list_name"`
		Books    []NYTBook `json:"books"`
	} `json:"results"`
}
