package domain

import "fmt"

// CarouselState is the serializable part of a carousel.
type CarouselState struct {
	CurrentIndex int `json:"current_index"`
}

// Carousel is a cyclic index over a fixed number of slides.
type Carousel struct {
	size  int
	state CarouselState
}

func NewCarousel(size int) (*Carousel, error) {
	if size <= 0 {
		return nil, ErrEmptyCarousel
	}
	return &Carousel{size: size}, nil
}

func RestoreCarousel(size int, state CarouselState) (*Carousel, error) {
	c, err := NewCarousel(size)
	if err != nil {
		return nil, err
	}
	if state.CurrentIndex < 0 || state.CurrentIndex >= size {
		return nil, fmt.Errorf("stored carousel index %d out of range", state.CurrentIndex)
	}
	c.state = state
	return c, nil
}

func (c *Carousel) State() CarouselState {
	return c.state
}

func (c *Carousel) Current() int {
	return c.state.CurrentIndex
}

func (c *Carousel) Size() int {
	return c.size
}

func (c *Carousel) Next() int {
	c.state.CurrentIndex = (c.state.CurrentIndex + 1) % c.size
	return c.state.CurrentIndex
}

func (c *Carousel) Previous() int {
	c.state.CurrentIndex = (c.state.CurrentIndex - 1 + c.size) % c.size
	return c.state.CurrentIndex
}

// JumpTo moves to slide i. Out-of-range indexes are ignored.
func (c *Carousel) JumpTo(i int) bool {
	if i < 0 || i >= c.size {
		return false
	}
	c.state.CurrentIndex = i
	return true
}
