package web

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"strings"

	embedded "teambalancer"
	"teambalancer/internal/balance"
	"teambalancer/internal/config"
	"teambalancer/internal/domain"
	"teambalancer/internal/service"
	"teambalancer/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const compositionsPerPage = 5

type Server struct {
	playerService *service.PlayerService
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		playerService: ps,
		cfg:           cfg,
		log:           log.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.NewPlayer, server.handleNewPlayerGet)
	// Registered after NewPlayer so the static route wins the match.
	app.Get(webpath.Player, server.handlePlayerGet)
	app.Post(webpath.Players, server.handleNewPlayerPost)
	app.Post(webpath.DeletePlayers, server.handleDeletePlayers)
	app.Get(webpath.Compositions, server.handleCompositions)
	app.Get(webpath.RosterCSV, server.handleExportCSV)
	app.Post(webpath.ImportRoster, server.handleImportCSV)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	players, err := s.playerService.ListPlayers()
	if err != nil {
		return err
	}
	return ctx.Render("index", fiber.Map{
		"Title":   "Roster",
		"Players": players,
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleNewPlayerGet(ctx *fiber.Ctx) error {
	return ctx.Render("newPlayer", fiber.Map{
		"Title":   "Add player",
		"Roles":   domain.Roles,
		"Ranks":   domain.Ranks(),
		"Regions": domain.Regions(),
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handlePlayerGet(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}
	player, err := s.playerService.Get(id)
	if errors.Is(err, service.ErrPlayerNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	return ctx.Render("player", fiber.Map{
		"Title":  player.Name,
		"Player": player,
		"Path":   webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleNewPlayerPost(ctx *fiber.Ctx) error {
	form := createPlayer{
		Name:       strings.TrimSpace(ctx.FormValue("name")),
		Rank:       ctx.FormValue("rank"),
		Region:     ctx.FormValue("region"),
		ShotCaller: ctx.FormValue("shot_caller") == "on",
		Main:       formValues(ctx, "main"),
		Secondary:  formValues(ctx, "secondary"),
		Tertiary:   formValues(ctx, "tertiary"),
	}
	if err := form.Validate(); err != nil {
		return err
	}
	main, err := parseRoleNames(form.Main)
	if err != nil {
		return err
	}
	secondary, err := parseRoleNames(form.Secondary)
	if err != nil {
		return err
	}
	tertiary, err := parseRoleNames(form.Tertiary)
	if err != nil {
		return err
	}
	rank, err := domain.ParseRank(form.Rank)
	if err != nil {
		return err
	}
	region, err := domain.ParseRegion(form.Region)
	if err != nil {
		return err
	}
	_, err = s.playerService.AddPlayer(form.Name, rank, region, main, secondary, tertiary, form.ShotCaller)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleDeletePlayers(ctx *fiber.Ctx) error {
	ids, err := parseIDs(formValues(ctx, "selected"))
	if err != nil {
		return err
	}
	if err := s.playerService.DeletePlayers(ids); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Home)
}

// handleCompositions runs the search over the selected players. Selection,
// mode and page all travel in the query string so that results stay
// shareable and the service keeps no view state.
func (s *Server) handleCompositions(ctx *fiber.Ctx) error {
	var ids []uuid.UUID
	if raw := ctx.Query("ids"); raw != "" {
		var err error
		ids, err = parseIDs(strings.Split(raw, ","))
		if err != nil {
			return err
		}
	}
	mode, err := balance.ParseMode(ctx.Query("mode"))
	if err != nil {
		return err
	}
	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	compositions, err := s.playerService.Generate(ctx.Context(), ids, s.cfg.TopN, mode)
	if errors.Is(err, balance.ErrNotEnoughPlayers) {
		return ctx.Render("compositions", fiber.Map{
			"Title": "Compositions",
			"Error": err.Error(),
			"Path":  webpath.Path(),
		}, "layouts/main")
	}
	if err != nil {
		return err
	}

	pages := int(math.Ceil(float64(len(compositions)) / compositionsPerPage))
	if pages > 0 && page > pages {
		page = pages
	}
	start := (page - 1) * compositionsPerPage
	end := start + compositionsPerPage
	if end > len(compositions) {
		end = len(compositions)
	}

	type entry struct {
		Number int
		Text   string
	}
	entries := make([]entry, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, entry{
			Number: i + 1,
			Text:   balance.FormatComposition(compositions[i]),
		})
	}
	query := "ids=" + ctx.Query("ids") + "&mode=" + mode.String()
	return ctx.Render("compositions", fiber.Map{
		"Title":        "Compositions",
		"Compositions": entries,
		"Page":         page,
		"Pages":        pages,
		"PrevPage":     page - 1,
		"NextPage":     page + 1,
		"Query":        query,
		"Path":         webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleExportCSV(ctx *fiber.Ctx) error {
	data, err := s.playerService.ExportCSV()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="roster.csv"`)
	return ctx.Send(data)
}

func (s *Server) handleImportCSV(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("roster")
	if err != nil {
		return err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	if err := s.playerService.ImportCSV(data); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Home)
}

func formValues(ctx *fiber.Ctx, key string) []string {
	raw := ctx.Context().PostArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
