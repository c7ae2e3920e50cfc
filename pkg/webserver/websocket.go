package webserver

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"f1telemetrycompare/pkg/caster"
	"f1telemetrycompare/pkg/compare"
	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/telemetry"

	"github.com/gorilla/websocket"
)

var (
	upgrader      = websocket.Upgrader{} // use default options
	payloadCaster = caster.JSONChannelCaster[telemetryPayload]{}
)

type telemetryPayload struct {
	DriverA string            `json:"driverA"`
	DriverB string            `json:"driverB"`
	Aligned telemetry.Aligned `json:"aligned"`
	Error   string            `json:"error,omitempty"`
}

// telemetryHandler sends the aligned series of one comparison to the
// result page. The client sends the compare query string and gets one
// JSON payload back.
func (m *Manager) telemetryHandler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}
		defer c.Close()

		mt, message, err := c.ReadMessage()
		if err != nil {
			log.Println("read:", err)
			return
		}

		payload := m.buildTelemetryPayload(r, string(message))

		data, err := payloadCaster.To(payload)
		if err != nil {
			log.Println("marshal:", err)
			return
		}
		err = c.WriteMessage(mt, []byte(data))
		if err != nil {
			log.Println("write:", err)
		}
	}
}

func (m *Manager) buildTelemetryPayload(r *http.Request, rawQuery string) telemetryPayload {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return telemetryPayload{Error: messageGenericError}
	}

	year, _ := strconv.Atoi(q.Get("year"))
	req := compare.Request{
		Year:    year,
		Event:   q.Get("event"),
		Session: q.Get("session"),
		DriverA: livetiming.NormalizeDriver(q.Get("driver1")),
		DriverB: livetiming.NormalizeDriver(q.Get("driver2")),
	}

	cmp, err := m.cm.Compare(r.Context(), req)
	if err != nil {
		log.Printf("telemetry payload failed: %s", err.Error())
		return telemetryPayload{Error: errorMessage(err)}
	}

	return telemetryPayload{
		DriverA: cmp.DriverA.Driver,
		DriverB: cmp.DriverB.Driver,
		Aligned: compare.Align(cmp),
	}
}
