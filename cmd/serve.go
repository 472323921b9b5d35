package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"scoregen/db"
	"scoregen/model"
	"scoregen/render"
	"scoregen/score"
	"scoregen/songs"
	"scoregen/util"
)

var library map[string]*score.Score

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves realized songs as JSON",
	Long:  `Serves realized songs as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func LoadLibrary() {
	library = songs.Library()
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	names := util.GetKeys(library)
	sort.Strings(names)
	json.NewEncoder(w).Encode(names)
}

func HandleGetSong(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	sc, ok := library[name]
	if !ok {
		writeError(w, http.StatusNotFound, "no song named "+name)
		return
	}

	tracks := make(map[string][]model.NoteEvent)
	for _, trackName := range sc.TrackNames() {
		track, err := sc.GetTrack(trackName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		tracks[trackName] = render.NoteEvents(track.GenerateNotes())
	}

	res := model.SongResponse{Name: name, Tracks: tracks}
	if metadata, ok := db.GetSongMetadatas([]string{name})[name]; ok {
		res.Metadata = &metadata
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGetTrack(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, ok := library[vars["name"]]
	if !ok {
		writeError(w, http.StatusNotFound, "no song named "+vars["name"])
		return
	}

	track, err := sc.GetTrack(vars["track"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.TrackResponse{
		Song:   vars["name"],
		Track:  vars["track"],
		Events: render.NoteEvents(track.GenerateNotes()),
	})
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleGetSong).Methods("GET")
	router.HandleFunc("/songs/{name}/tracks/{track}", HandleGetTrack).Methods("GET")
	return router
}

func serve() {
	LoadLibrary()
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":8080", handler))
}
