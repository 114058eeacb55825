package domain

type Page struct {
	Number int
	Size   int
}

func NewPage(pageNumber, pageSize int) Page {
	pNumber := 1
	if pageNumber > 0 {
		pNumber = pageNumber
	}

	pSize := 10
	if pageSize > 0 {
		pSize = pageSize
	}

	return Page{
		Number: pNumber,
		Size:   pSize,
	}
}

// Bounds returns the [from, to) indexes of the page within a list of the
// given length.
func (p *Page) Bounds(length int) (int, int) {
	if p == nil {
		return 0, length
	}
	from := p.Number*p.Size - p.Size
	if from < 0 {
		from = 0
	}
	if from > length {
		from = length
	}
	to := from + p.Size
	if to > length {
		to = length
	}
	return from, to
}
