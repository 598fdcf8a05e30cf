package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMaxBody = 8 << 20

var (
	addrFlag    string
	maxBodyFlag int64
	originFlag  []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the decoder over HTTP",
	Long:  `POST a Standard MIDI File to /decode to get a JSON summary of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &server{
			opts:    decodeOptions(),
			maxBody: maxBodyFlag,
			origins: originFlag,
		}

		srv := &http.Server{Addr: addrFlag, Handler: s.routes()}
		go func() {
			<-cmd.Context().Done()
			_ = srv.Close()
		}()

		serveLog.Info("listen", zap.String("addr", addrFlag))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":8080", "Listen address")
	serveCmd.Flags().Int64Var(&maxBodyFlag, "max-body", defaultMaxBody, "Largest accepted request body in bytes")
	serveCmd.Flags().StringSliceVar(&originFlag, "origin", []string{"*"}, "Allowed CORS origins")
	rootCmd.AddCommand(serveCmd)
}

type server struct {
	opts    []midi.Option
	maxBody int64
	origins []string
}

type ErrorResponse struct {
	Detail   string `json:"detail"`
	Kind     string `json:"kind"`
	Position *int   `json:"position,omitempty"`
}

type trackSummary struct {
	Events int    `json:"events"`
	Ticks  uint64 `json:"ticks"`
}

type decodeSummary struct {
	Format              string         `json:"format"`
	DeclaredTracks      uint16         `json:"declared_tracks"`
	TicksPerQuarterNote uint16         `json:"ticks_per_quarter_note"`
	Tracks              []trackSummary `json:"tracks"`
}

func summarize(f *midi.File) decodeSummary {
	res := decodeSummary{
		Format:              f.Header.Format.String(),
		DeclaredTracks:      f.Header.TrackCount,
		TicksPerQuarterNote: f.Header.Division.TicksPerQuarterNote(),
		Tracks:              make([]trackSummary, 0, len(f.Tracks)),
	}
	for _, track := range f.Tracks {
		res.Tracks = append(res.Tracks, trackSummary{Events: len(track.Events), Ticks: track.Duration()})
	}
	return res
}

func (s *server) routes() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/decode", s.handleDecode).Methods(http.MethodPost)
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		serveLog.Debug("request", zap.String("id", id), zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		serveLog.Debug("write response", zap.Error(err))
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Detail: err.Error(), Kind: "body"})
		return
	}

	f, err := midi.Decode(data, s.opts...)
	if err != nil {
		kind, pos := errorKind(err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error(), Kind: kind, Position: pos})
		return
	}

	writeJSON(w, http.StatusOK, summarize(f))
}
