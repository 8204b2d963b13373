// Package host publishes the Container to the host page.
//
// In the browser kit the Container is exposed as a well-known global so
// page scripts can reach live widgets. The equivalent here is a small JSON
// surface mounted on the application router. Headless deployments, such as
// server-side rendering workers, skip publication and keep the Container
// reachable only from Go.
//
//	if host.Detect(cfg.Host) {
//	    host.Publish(router, c, cfg.Host.Prefix)
//	}
//
// Routes (relative to the prefix):
//
//	GET    /container                       all kinds with their ids
//	GET    /container/{kind}                ids of one kind
//	GET    /container/{kind}/{id}           200 when registered, 404 otherwise
//	POST   /container/{kind}/{id}/destroy   Destroy, entry stays
//	DELETE /container/{kind}/{id}           DestroyAndRemove
//	DELETE /container/{kind}/{id}?keep=handle  Remove only
package host

import (
	"net/http"

	"github.com/km-arc/go-sui/framework/config"
	"github.com/km-arc/go-sui/framework/container"
	gohttp "github.com/km-arc/go-sui/framework/http"
	"github.com/km-arc/go-sui/framework/http/validation"
	"github.com/km-arc/go-sui/framework/routing"
)

// Detect reports whether a host is available to publish the Container to.
func Detect(cfg config.HostConfig) bool {
	return !cfg.Headless
}

// Publish mounts the Container routes under prefix.
func Publish(r *routing.Router, c *container.Container, prefix string) {
	h := &handler{c: c}
	r.Prefix(prefix, func(sui *routing.Router) {
		sui.Get("/container", h.all)
		sui.Get("/container/{kind}", h.bucket)
		sui.Get("/container/{kind}/{id}", h.has)
		sui.Post("/container/{kind}/{id}/destroy", h.destroy)
		sui.Delete("/container/{kind}/{id}", h.remove)
	})
}

type handler struct {
	c *container.Container
}

type instanceRef struct {
	Component string `json:"component"`
	ID        string `json:"id"`
}

func (h *handler) all(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	out := make(map[string][]string, len(container.Kinds()))
	for _, kind := range container.Kinds() {
		if ids, ok := h.c.IDs(kind); ok {
			out[kind.String()] = ids
		}
	}
	res.Success(out)
}

func (h *handler) bucket(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)

	kind, ok := h.kind(req, res)
	if !ok {
		return
	}
	ids, ok := h.c.IDs(kind)
	if !ok {
		res.NotFound("Component " + kind.String() + " does not exist.")
		return
	}
	res.Success(ids)
}

func (h *handler) has(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)

	kind, id, ok := h.target(req, res)
	if !ok {
		return
	}
	if !h.c.Has(kind, id) {
		res.NotFound("Instance with ID " + id + " does not exist.")
		return
	}
	res.Success(instanceRef{Component: kind.String(), ID: id})
}

func (h *handler) destroy(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)

	kind, id, ok := h.target(req, res)
	if !ok {
		return
	}
	if err := h.c.Destroy(kind, id); err != nil {
		res.NotFound(err.Error())
		return
	}
	res.NoContent()
}

func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)

	kind, id, ok := h.target(req, res)
	if !ok {
		return
	}

	keep := req.Query("keep")
	v := validation.Make(map[string]string{"keep": keep}, validation.Rules{"keep": "sometimes|in:handle"})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	var err error
	if keep == "handle" {
		err = h.c.Remove(kind, id)
	} else {
		err = h.c.DestroyAndRemove(kind, id)
	}
	if err != nil {
		res.NotFound(err.Error())
		return
	}
	res.NoContent()
}

// kind resolves the {kind} param, answering 404 for unknown components.
func (h *handler) kind(req *gohttp.Request, res *gohttp.Response) (container.Kind, bool) {
	name := req.RouteParam("kind")
	kind, err := container.ParseKind(name)
	if err != nil {
		res.NotFound("Component " + name + " does not exist.")
		return 0, false
	}
	return kind, true
}

// target resolves {kind} and validates {id}.
func (h *handler) target(req *gohttp.Request, res *gohttp.Response) (container.Kind, string, bool) {
	kind, ok := h.kind(req, res)
	if !ok {
		return 0, "", false
	}

	id := req.RouteParam("id")
	v := validation.Make(map[string]string{"id": id}, validation.Rules{"id": "required|alpha_dash|max:64"})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return 0, "", false
	}
	return kind, id, true
}
