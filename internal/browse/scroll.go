// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"sync"
)

// BackToTopOffset is the scroll offset above which the back-to-top control
// is shown.
const BackToTopOffset = 300

// Scroller turns viewport events into pagination and the back-to-top
// indicator. A front-end reports two things: the end-of-list sentinel
// becoming visible, and the scroll offset, from a single passive listener.
type Scroller struct {
	controller *Controller

	mu            sync.Mutex
	showBackToTop bool
}

// NewScroller attaches a scroller to controller.
func NewScroller(controller *Controller) *Scroller {
	return &Scroller{controller: controller}
}

// Armed reports whether the sentinel is currently observed.
func (scroller *Scroller) Armed() bool {
	return scroller.controller.Snapshot().SentinelArmed()
}

// Visible handles the sentinel entering the viewport. On an armed sentinel
// it advances the page counter and loads that page; otherwise it does
// nothing and returns false.
func (scroller *Scroller) Visible(ctx context.Context) bool {
	return scroller.controller.LoadMore(ctx)
}

// OnScroll records the viewport offset and reports whether the back-to-top
// control should be shown.
func (scroller *Scroller) OnScroll(offset int) bool {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()

	scroller.showBackToTop = offset > BackToTopOffset
	return scroller.showBackToTop
}

// ShowBackToTop returns the last indicator computed by [Scroller.OnScroll].
func (scroller *Scroller) ShowBackToTop() bool {
	scroller.mu.Lock()
	defer scroller.mu.Unlock()
	return scroller.showBackToTop
}
