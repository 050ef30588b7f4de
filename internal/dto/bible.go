package dto

// PassageQuery is the query string of GET /api/bible/passage.
type PassageQuery struct {
	Ref         string `query:"ref"`
	Translation string `query:"translation"`
}

// ChapterQuery is the query string of GET /api/bible/chapter.
type ChapterQuery struct {
	Book        string `query:"book"`
	Chapter     int    `query:"chapter"`
	Translation string `query:"translation"`
}
