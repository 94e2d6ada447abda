package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// The handlers below are pure: they take already-parsed request values and
// return a response value. The handle* adapters do the request parsing.

func hello() Response {
	return Text(http.StatusOK, "Hello world!")
}

func echo(body []byte) Response {
	return Response{Status: http.StatusOK, ContentType: contentTypeText, Body: body}
}

func manualHello() Response {
	return Text(http.StatusOK, "Hey there!")
}

func withQueryString(userID uint32, friend string) Response {
	return Text(http.StatusOK, fmt.Sprintf("Welcome %s, user_id %d!", friend, userID))
}

func customJSON(name string) Response {
	obj := NameObject{Name: name}
	return Response{Status: http.StatusOK, ContentType: contentTypeJSON, Body: obj.AppendJSON(nil)}
}

// withEither answers Right on true and a 400 Left on false.
func (s *Server) withEither(ctx context.Context, value bool) Either {
	s.logger.InfoContext(ctx, "Processing value", "value", value)
	if value {
		return Right("Correct data")
	}
	return Left(Text(http.StatusBadRequest, "Bad data"))
}

func (s *Server) handleHello(r *http.Request) (Responder, error) {
	return hello(), nil
}

func (s *Server) handleEcho(r *http.Request) (Responder, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return echo(body), nil
}

func (s *Server) handleWithQueryString(r *http.Request) (Responder, error) {
	userID, err := PathUint32(r, "user_id")
	if err != nil {
		return nil, err
	}
	friend, err := PathString(r, "friend")
	if err != nil {
		return nil, err
	}
	return withQueryString(userID, friend), nil
}

func (s *Server) handleCustomJSON(r *http.Request) (Responder, error) {
	name, err := PathString(r, "name")
	if err != nil {
		return nil, err
	}
	return customJSON(name), nil
}

func (s *Server) handleWithEither(r *http.Request) (Responder, error) {
	value, err := PathBool(r, "value")
	if err != nil {
		return nil, err
	}
	return s.withEither(r.Context(), value), nil
}

func (s *Server) handleManualHello(r *http.Request) (Responder, error) {
	return manualHello(), nil
}
