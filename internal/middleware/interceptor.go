package middleware

import "github.com/labstack/echo/v4"

// Interceptor is one named step of the request pipeline.
type Interceptor interface {
	Name() string
	Intercept(next echo.HandlerFunc) echo.HandlerFunc
}

type funcInterceptor struct {
	name string
	mw   echo.MiddlewareFunc
}

func (f funcInterceptor) Name() string { return f.name }

func (f funcInterceptor) Intercept(next echo.HandlerFunc) echo.HandlerFunc { return f.mw(next) }

// Wrap turns a plain echo middleware into an Interceptor.
func Wrap(name string, mw echo.MiddlewareFunc) Interceptor {
	return funcInterceptor{name: name, mw: mw}
}

// Pipeline runs interceptors in slice order. The first one is the outermost.
type Pipeline struct {
	interceptors []Interceptor
}

func NewPipeline(interceptors ...Interceptor) *Pipeline {
	return &Pipeline{interceptors: interceptors}
}

func (p *Pipeline) Names() []string {
	names := make([]string, len(p.interceptors))
	for i, ic := range p.interceptors {
		names[i] = ic.Name()
	}
	return names
}

func (p *Pipeline) Then(h echo.HandlerFunc) echo.HandlerFunc {
	for i := len(p.interceptors) - 1; i >= 0; i-- {
		h = p.interceptors[i].Intercept(h)
	}
	return h
}

// Middleware adapts the pipeline for echo's Use and route registration.
func (p *Pipeline) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return p.Then(next)
	}
}
