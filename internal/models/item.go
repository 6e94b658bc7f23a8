package models

type ItemCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Item struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
}
