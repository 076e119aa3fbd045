package model

type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime int    `json:"readTime"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}

var NilArticle = Article{}
