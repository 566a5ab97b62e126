package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"
	"sync"

	"gatortrips/internal/models/db_models"
	"gatortrips/pkg/utils"
)

// leaveBySlackMinutes widens the departure window by this much on each side.
const leaveBySlackMinutes = 5

type LegAnnotator struct {
	provider RouteProvider
}

func NewLegAnnotator(provider RouteProvider) *LegAnnotator {
	return &LegAnnotator{provider: provider}
}

// AnnotateLegs fetches travel guidance for every consecutive pair in the
// final order. Leg requests are independent and issued concurrently; a
// failed leg degrades to placeholder data and never aborts the others.
func (a *LegAnnotator) AnnotateLegs(ctx context.Context, events []db_models.Event, mode db_models.TravelMode) db_models.LegList {
	if len(events) < 2 {
		return nil
	}

	legs := make(db_models.LegList, len(events)-1)

	var wg sync.WaitGroup
	for i := 0; i < len(events)-1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			legs[i] = a.annotateLeg(ctx, &events[i], &events[i+1], mode)
		}(i)
	}
	wg.Wait()

	return legs
}

func (a *LegAnnotator) annotateLeg(ctx context.Context, from, to *db_models.Event, mode db_models.TravelMode) db_models.Leg {
	resp, err := a.provider.GetDirections(ctx, DirectionsRequest{
		Origin:      from.Address,
		Destination: to.Address,
		TravelMode:  mode,
	})
	if err != nil {
		log.Printf("leg annotator: %q to %q: %v", from.Title, to.Title, err)
		return fallbackLeg(to, mode)
	}

	travel := DurationMinutes(resp.DurationRaw)

	leg := db_models.Leg{
		Mode:            mode,
		DurationText:    resp.DurationText,
		DurationMinutes: travel,
		LeaveByStart:    utils.FormatClock(to.StartMinute - travel - leaveBySlackMinutes),
		LeaveByEnd:      utils.FormatClock(to.StartMinute - travel + leaveBySlackMinutes),
		Detail:          buildLegDetail(mode, resp),
	}
	if leg.DurationText == "" {
		leg.DurationText = fmt.Sprintf("%d min", travel)
	}
	return leg
}

// fallbackLeg is the placeholder recorded when the provider fails for one
// leg: duration "N/A" and leave-by pinned to the destination's start.
func fallbackLeg(to *db_models.Event, mode db_models.TravelMode) db_models.Leg {
	start := utils.FormatClock(to.StartMinute)
	return db_models.Leg{
		Mode:         mode,
		DurationText: "N/A",
		LeaveByStart: start,
		LeaveByEnd:   start,
	}
}

func buildLegDetail(mode db_models.TravelMode, resp *DirectionsResponse) db_models.LegDetail {
	if mode != db_models.TravelModeTransit {
		return db_models.DrivingDetail{Instruction: stripMarkup(resp.Instruction)}
	}

	steps := make([]db_models.TransitStep, 0, len(resp.Steps))
	for _, s := range resp.Steps {
		steps = append(steps, db_models.TransitStep{
			Mode:         s.Mode,
			DurationText: s.DurationText,
			Instruction:  stripMarkup(s.Instructions),
		})
	}
	return db_models.TransitDetail{Steps: steps}
}

var markupRe = regexp.MustCompile(`<[^>]*>`)

// stripMarkup reduces provider instructions to plain text.
func stripMarkup(s string) string {
	plain := html.UnescapeString(markupRe.ReplaceAllString(s, " "))
	return strings.Join(strings.Fields(plain), " ")
}
