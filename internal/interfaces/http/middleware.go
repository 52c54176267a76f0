package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/inventory-orders-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// Tracing abre un span de servidor por petición y lo deja en c.UserContext().
// Respeta traceparent entrante (propagador global).
func Tracing() fiber.Handler {
	tr := otel.Tracer("github.com/jhoicas/inventory-orders-api/internal/interfaces/http")
	return func(c *fiber.Ctx) error {
		carrier := propagation.HeaderCarrier(http.Header{})
		c.Request().Header.VisitAll(func(k, v []byte) {
			carrier.Set(string(k), string(v))
		})
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.Path())
		ctx, span := tr.Start(ctx, method+" "+path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(method),
				semconv.URLPath(path),
			),
		)
		defer span.End()
		c.SetUserContext(ctx)

		err := c.Next()

		// Nombre por plantilla de ruta (/api/orders/:id/pdf), no por path con IDs.
		route := utils.CopyString(c.Route().Path)
		span.SetName(method + " " + route)
		span.SetAttributes(semconv.HTTPRoute(route))

		status := c.Response().StatusCode()
		if err != nil {
			status, _ = errorStatus(err)
			span.RecordError(err)
		}
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		return err
	}
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
// Asigna X-Request-ID (uuid si no viene) y deja un logger con request_id/trace_id en el contexto.
func RequestLogger(log *logger.Logger) fiber.Handler {
	base := log.Component("http").Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals(LocalRequestID, reqID)

		zc := base.With().Str("request_id", reqID)
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			zc = zc.Str("trace_id", sc.TraceID().String())
		}
		reqLog := zc.Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		if err := c.Next(); err != nil {
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
