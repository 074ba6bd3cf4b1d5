package proxy

import (
	"context"
	"sort"
	"time"

	"github.com/kbukum/patternkit/errors"
	"github.com/kbukum/patternkit/logger"
)

// Video is what the library serves.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// VideoLib is the subject interface shared by the real library and the proxy.
type VideoLib interface {
	Popular(ctx context.Context) ([]Video, error)
	Video(ctx context.Context, id string) (Video, error)
}

// Library is the real subject: a third-party video service with network
// latency simulated per call.
type Library struct {
	latency time.Duration
	videos  map[string]Video
	log     *logger.Logger
}

// NewLibrary creates the slow library. latency is paid once per call.
func NewLibrary(latency time.Duration) *Library {
	return &Library{
		latency: latency,
		videos: map[string]Video{
			"catzzzzzzzzz": {ID: "catzzzzzzzzz", Title: "Catzzzz.avi"},
			"mkafksangasj": {ID: "mkafksangasj", Title: "Dog play with ball.mp4"},
			"dancesvideoo": {ID: "dancesvideoo", Title: "Dancing video.mpq"},
			"dlsdk5jfslaf": {ID: "dlsdk5jfslaf", Title: "Barcelona vs RealM.mov"},
			"3sdfgsd1j333": {ID: "3sdfgsd1j333", Title: "Programing lesson#1.avi"},
		},
		log: logger.WithComponent("video-library"),
	}
}

// Popular downloads the popular-videos list.
func (l *Library) Popular(ctx context.Context) ([]Video, error) {
	if err := l.connect(ctx, "popular"); err != nil {
		return nil, err
	}

	out := make([]Video, 0, len(l.videos))
	for _, v := range l.videos {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Video downloads one video's metadata.
func (l *Library) Video(ctx context.Context, id string) (Video, error) {
	if err := l.connect(ctx, id); err != nil {
		return Video{}, err
	}

	v, ok := l.videos[id]
	if !ok {
		return Video{}, errors.InvalidInput("id", "unknown video "+id)
	}
	return v, nil
}

// connect burns the simulated network latency, honoring cancellation.
func (l *Library) connect(ctx context.Context, what string) error {
	l.log.Debug("Downloading", logger.Fields("what", what))

	select {
	case <-time.After(l.latency):
		return nil
	case <-ctx.Done():
		return errors.New(errors.ErrCodeTimeout, "download cancelled", 0).WithCause(ctx.Err())
	}
}
