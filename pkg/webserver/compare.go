package webserver

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"f1telemetrycompare/pkg/compare"
	"f1telemetrycompare/pkg/helper"
	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/model"

	"f1telemetrycompare/pkg/chart"
)

const (
	messageSessionNotFound = "No se ha encontrado la sesión. Revisa el año, el gran premio y el tipo de sesión."
	messageDriverNotFound  = "Alguno de los pilotos no tiene vuelta cronometrada en esta sesión."
	messageGenericError    = "No se ha podido completar la comparación. Vuelve a intentarlo."
)

type formData struct {
	Years    []int
	Sessions []string
	Error    string
}

type resultData struct {
	Cmp          model.Comparison
	LapA         string
	LapB         string
	Delta        string
	DeltaDriver  string
	ChartURL     template.URL
	WebSocketURL template.URL
}

func requestFromQuery(r *http.Request) compare.Request {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	return compare.Request{
		Year:    year,
		Event:   q.Get("event"),
		Session: q.Get("session"),
		DriverA: livetiming.NormalizeDriver(q.Get("driver1")),
		DriverB: livetiming.NormalizeDriver(q.Get("driver2")),
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, livetiming.ErrSessionNotFound):
		return messageSessionNotFound
	case errors.Is(err, livetiming.ErrDriverNotFound):
		return messageDriverNotFound
	}
	return messageGenericError
}

func (m *Manager) indexHandler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		years := []int{}
		for y := 2025; y >= 2018; y-- {
			years = append(years, y)
		}
		e := formData{
			Years:    years,
			Sessions: livetiming.SessionNames(),
		}
		indexTemplate.Execute(w, e)
	}
}

func (m *Manager) compareHandler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromQuery(r)

		cmp, err := m.cm.Compare(r.Context(), req)
		if err != nil {
			log.Printf("comparison failed: %s", err.Error())
			errorTemplate.Execute(w, errorMessage(err))
			return
		}

		query := template.URL(r.URL.RawQuery)
		e := resultData{
			Cmp:          cmp,
			LapA:         helper.SecondsToMinutes(cmp.DriverA.Lap.Time),
			LapB:         helper.SecondsToMinutes(cmp.DriverB.Lap.Time),
			Delta:        helper.SecondsToDiff(cmp.Delta),
			DeltaDriver:  cmp.Slower,
			ChartURL:     "/chart.svg?" + query,
			WebSocketURL: template.URL("ws://" + r.Host + "/telemetry"),
		}
		resultTemplate.Execute(w, e)
	}
}

func (m *Manager) chartHandler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromQuery(r)

		cmp, err := m.cm.Compare(r.Context(), req)
		if err != nil {
			log.Printf("chart failed: %s", err.Error())
			http.Error(w, errorMessage(err), http.StatusNotFound)
			return
		}

		svg, err := chart.BuildComparisonSVG(cmp, compare.Align(cmp))
		if err != nil {
			log.Printf("chart render failed: %s", err.Error())
			http.Error(w, messageGenericError, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	}
}

var indexTemplate = template.Must(template.New("").Parse(`
<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Comparador de vueltas rápidas F1</title>
  <style>
    body { background: #111; color: #eee; font-family: sans-serif; max-width: 640px; margin: 2em auto; }
    label { display: block; margin-top: 1em; }
    input, select { width: 100%; padding: 6px; background: #222; color: #eee; border: 1px solid #444; }
    button { margin-top: 1.5em; padding: 8px 24px; }
  </style>
</head>
<body>
  <h1>🏁 Comparador de vueltas rápidas F1</h1>

  <form action="/compare" method="get">
    <label>Año
      <select name="year">
        {{ range .Years }}<option value="{{ . }}">{{ . }}</option>{{ end }}
      </select>
    </label>
    <label>Gran Premio (p. ej. Monza o número de ronda)
      <input type="text" name="event" value="Monza">
    </label>
    <label>Sesión
      <select name="session">
        {{ range .Sessions }}<option value="{{ . }}">{{ . }}</option>{{ end }}
      </select>
    </label>
    <label>Piloto 1 (p. ej. VER)
      <input type="text" name="driver1" value="VER">
    </label>
    <label>Piloto 2 (p. ej. HAM)
      <input type="text" name="driver2" value="HAM">
    </label>
    <button type="submit">Comparar vueltas rápidas</button>
  </form>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("").Parse(`
<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Comparador de vueltas rápidas F1</title>
  <style>
    body { background: #111; color: #eee; font-family: sans-serif; max-width: 640px; margin: 2em auto; }
    .error { background: #5a1f1f; padding: 1em; border-radius: 4px; }
  </style>
</head>
<body>
  <p class="error">⚠️ {{ . }}</p>
  <p><a style="color:#8cf" href="/">Volver a intentarlo</a></p>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("").Parse(`
<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{ .Cmp.Title }}</title>
  <style>
    body { background: #111; color: #eee; font-family: sans-serif; max-width: 960px; margin: 2em auto; }
    .metrics { display: flex; gap: 2em; margin-bottom: 1em; }
    .metric b { display: block; font-size: 1.4em; }
    #readout { color: #aaa; height: 1.2em; }
  </style>
</head>
<body>
  <h2>{{ .Cmp.Title }}</h2>

  <div class="metrics">
    <div class="metric">{{ .Cmp.DriverA.Driver }} ({{ .Cmp.DriverA.Team }})<b>{{ .LapA }}</b></div>
    <div class="metric">{{ .Cmp.DriverB.Driver }} ({{ .Cmp.DriverB.Team }})<b>{{ .LapB }}</b></div>
    <div class="metric">Δ vuelta ({{ .DeltaDriver }})<b>{{ .Delta }}</b></div>
  </div>

  <!-- SVG container -->
  <svg id="svgContainer" width="900" height="460" xmlns="http://www.w3.org/2000/svg"></svg>
  <div id="readout"></div>
  <p><a style="color:#8cf" href="/">Nueva comparación</a></p>

  <script>
    const chartUrl = '{{ .ChartURL }}';
    const wsUrl = '{{ .WebSocketURL }}';
    const query = window.location.search;

    const svgContainer = document.getElementById('svgContainer');
    const readout = document.getElementById('readout');

    let aligned = null;

    // WebSocket connection for the hover readout data
    const socket = new WebSocket(wsUrl);

    socket.addEventListener('open', (event) => {
      socket.send(query.substring(1));
    });

    socket.addEventListener('message', (event) => {
      aligned = JSON.parse(event.data);
      socket.close();
    });

    socket.addEventListener('error', (event) => {
      console.error('WebSocket connection error:', event);
    });

    svgContainer.addEventListener('mousemove', (event) => {
      if (!aligned || aligned.aligned.distance.length === 0) {
        return;
      }
      const rect = svgContainer.getBoundingClientRect();
      // chart plot area runs from x=64 to width-24
      const f = (event.clientX - rect.left - 64) / (rect.width - 64 - 24);
      const dists = aligned.aligned.distance;
      const i = Math.min(dists.length - 1, Math.max(0, Math.round(f * (dists.length - 1))));
      readout.textContent = (dists[i] / 1000).toFixed(2) + ' km — '
        + aligned.driverA + ': ' + aligned.aligned.speedA[i].toFixed(0) + ' km/h, '
        + aligned.driverB + ': ' + aligned.aligned.speedB[i].toFixed(0) + ' km/h';
    });

    // Function to download and display the SVG
    async function downloadAndDisplaySVG(url) {
      try {
        // Fetch the SVG file
        const response = await fetch(url);

        if (!response.ok) {
          throw new Error(` + "`Failed to fetch SVG: ${response.statusText}`" + `);
        }

        // Get the SVG content as text
        const svgText = await response.text();

        // Insert the SVG into the container
        svgContainer.innerHTML = svgText;
      } catch (error) {
        console.error(error.message);
      }
    }

    // Call the function to download and display the SVG
    downloadAndDisplaySVG(chartUrl);
  </script>
</body>
</html>
`))
