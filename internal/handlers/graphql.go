package handlers

import (
	"LinkBoard/internal/config"
	"LinkBoard/internal/graph"
	"LinkBoard/internal/service"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// GraphQLHandler обслуживает /graphql.
// Принимает application/json и multipart/form-data: во втором случае
// GraphQL-запрос лежит в поле operations (или query), а файловая часть
// image уходит в контекст запроса — её заберут мутации постов.
type GraphQLHandler struct {
	Schema graphql.Schema
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewGraphQLHandler создаёт хендлер graphql
func NewGraphQLHandler(schema graphql.Schema, logger *zap.SugaredLogger, cfg *config.Config) *GraphQLHandler {
	return &GraphQLHandler{Schema: schema, Logger: logger, Config: cfg}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve разбирает запрос, выполняет его против схемы и отдаёт результат.
// Ошибки резолверов возвращаются внутри тела ответа со статусом 200,
// как принято в GraphQL; 400 — только за нечитаемый запрос.
func (h *GraphQLHandler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req graphqlRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Лимит общего тела запроса
		maxBody := int64(h.Config.ImageMaxSizeMB)*1024*1024 + 1*1024*1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.Logger.Warnw("graphql: invalid multipart form", "error", err)
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		if ops := r.FormValue("operations"); ops != "" {
			if err := json.Unmarshal([]byte(ops), &req); err != nil {
				h.Logger.Warnw("graphql: invalid operations json", "error", err)
				http.Error(w, "invalid operations", http.StatusBadRequest)
				return
			}
		} else {
			req.Query = r.FormValue("query")
		}

		// файловая часть image — фиксированное имя поля
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				h.Logger.Warnw("graphql: failed to read image part", "error", readErr)
				http.Error(w, "failed to read image", http.StatusBadRequest)
				return
			}
			maxImage := int64(h.Config.ImageMaxSizeMB) * 1024 * 1024
			if int64(len(data)) > maxImage {
				h.Logger.Warnw("graphql: image too large", "size", len(data), "limit", maxImage)
				http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
				return
			}
			ctx = graph.WithUpload(ctx, &service.Upload{Name: header.Filename, Data: data})
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.Logger.Warnw("graphql: invalid request body", "error", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
	}

	if req.Query == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.Schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}
