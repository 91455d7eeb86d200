package tui

import (
	"github.com/sahilm/fuzzy"

	"reel/internal/domain"
)

// row is one selectable line: either a video or a folder.
type row struct {
	title  string
	detail string
	video  *domain.Video
	folder *domain.Folder
}

func videoRow(v domain.Video) row {
	detail := v.FormattedSize()
	if m := v.FormattedModified(); m != "" {
		if detail != "" {
			detail += "  " + m
		} else {
			detail = m
		}
	}
	vc := v
	return row{title: v.Title, detail: detail, video: &vc}
}

func folderRow(f domain.Folder) row {
	fc := f
	return row{title: f.Name, detail: f.FormattedCount(), folder: &fc}
}

func videoRows(videos []domain.Video) []row {
	rows := make([]row, len(videos))
	for i, v := range videos {
		rows[i] = videoRow(v)
	}
	return rows
}

func folderRows(folders []domain.Folder) []row {
	rows := make([]row, len(folders))
	for i, f := range folders {
		rows[i] = folderRow(f)
	}
	return rows
}

// rowSource adapts rows for fuzzy matching on titles.
type rowSource []row

func (s rowSource) String(i int) string { return s[i].title }
func (s rowSource) Len() int            { return len(s) }

// highlightRows computes matched rune positions per row for query, keeping
// row order. Rows the matcher rejects get no highlight.
func highlightRows(rows []row, query string) [][]int {
	if query == "" {
		return nil
	}
	highlights := make([][]int, len(rows))
	for _, m := range fuzzy.FindFrom(query, rowSource(rows)) {
		highlights[m.Index] = m.MatchedIndexes
	}
	return highlights
}
