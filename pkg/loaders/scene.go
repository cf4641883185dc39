// Package loaders reads and writes scene description files. The on-disk
// form is JSON mirroring the construction-level data model: shapes are
// stored as their constructor parameters, not their derived geometry.
package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prenoma/go-whitted-raytracer/pkg/core"
	"github.com/prenoma/go-whitted-raytracer/pkg/geometry"
	"github.com/prenoma/go-whitted-raytracer/pkg/scene"
)

type sphereSpec struct {
	Center   core.Vec3     `json:"center"`
	Radius   float64       `json:"radius"`
	Material core.Material `json:"material"`
}

type ellipsoidSpec struct {
	Center   core.Vec3     `json:"center"`
	SemiAxes [3]core.Vec3  `json:"semiAxes"`
	Material core.Material `json:"material"`
}

type rhombohedronSpec struct {
	Corner   core.Vec3     `json:"corner"`
	Length   core.Vec3     `json:"length"`
	Width    core.Vec3     `json:"width"`
	Height   core.Vec3     `json:"height"`
	Material core.Material `json:"material"`
}

type polygonSpec struct {
	Vertices []core.Vec3   `json:"vertices"`
	Material core.Material `json:"material"`
}

type sceneFile struct {
	Spheres       []sphereSpec       `json:"spheres,omitempty"`
	Ellipsoids    []ellipsoidSpec    `json:"ellipsoids,omitempty"`
	Rhombohedrons []rhombohedronSpec `json:"rhombohedrons,omitempty"`
	Polygons      []polygonSpec      `json:"polygons,omitempty"`
	Lights        []core.Light       `json:"lights,omitempty"`

	Ambient        core.Vec3 `json:"ambient"`
	AirAttenuation core.Vec3 `json:"airAttenuation"`

	ViewportOrigin core.Vec3 `json:"viewportOrigin"`
	ViewportXAxis  core.Vec3 `json:"viewportXAxis"`
	ViewportYAxis  core.Vec3 `json:"viewportYAxis"`
	EyePosition    core.Vec3 `json:"eyePosition"`

	AAType scene.AntiAliasType `json:"aaType"`
	AARate int                 `json:"aaRate"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// LoadScene reads a scene description from a JSON file. Any structural or
// construction error is fatal for the load: no partial scene is returned.
func LoadScene(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var file sceneFile
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	return buildScene(&file)
}

func buildScene(file *sceneFile) (*scene.Scene, error) {
	if file.Width <= 0 || file.Height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", file.Width, file.Height)
	}
	if file.AARate < 1 {
		return nil, fmt.Errorf("invalid anti-alias rate %d", file.AARate)
	}

	s := &scene.Scene{
		Lights:         file.Lights,
		Ambient:        file.Ambient,
		AirAttenuation: file.AirAttenuation,
		ViewportOrigin: file.ViewportOrigin,
		ViewportXAxis:  file.ViewportXAxis,
		ViewportYAxis:  file.ViewportYAxis,
		EyePosition:    file.EyePosition,
		AAType:         file.AAType,
		AARate:         file.AARate,
		Width:          file.Width,
		Height:         file.Height,
	}

	for _, spec := range file.Spheres {
		s.Spheres = append(s.Spheres, geometry.NewSphere(spec.Center, spec.Radius, spec.Material))
	}

	for i, spec := range file.Ellipsoids {
		ellipsoid, err := geometry.NewEllipsoid(spec.Center, spec.SemiAxes, spec.Material)
		if err != nil {
			return nil, fmt.Errorf("ellipsoid %d: %w", i, err)
		}
		s.Ellipsoids = append(s.Ellipsoids, ellipsoid)
	}

	for _, spec := range file.Rhombohedrons {
		s.Rhombohedrons = append(s.Rhombohedrons,
			geometry.NewRhombohedron(spec.Corner, spec.Length, spec.Width, spec.Height, spec.Material))
	}

	for i, spec := range file.Polygons {
		polygon, err := geometry.NewPolygon(spec.Vertices, spec.Material)
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		s.Polygons = append(s.Polygons, polygon)
	}

	return s, nil
}

// SaveScene writes a scene description as pretty-printed JSON
func SaveScene(path string, s *scene.Scene) error {
	file := sceneFile{
		Lights:         s.Lights,
		Ambient:        s.Ambient,
		AirAttenuation: s.AirAttenuation,
		ViewportOrigin: s.ViewportOrigin,
		ViewportXAxis:  s.ViewportXAxis,
		ViewportYAxis:  s.ViewportYAxis,
		EyePosition:    s.EyePosition,
		AAType:         s.AAType,
		AARate:         s.AARate,
		Width:          s.Width,
		Height:         s.Height,
	}

	for _, shape := range s.Spheres {
		file.Spheres = append(file.Spheres, sphereSpec{
			Center:   shape.Center,
			Radius:   shape.Radius,
			Material: shape.Material,
		})
	}
	for _, shape := range s.Ellipsoids {
		file.Ellipsoids = append(file.Ellipsoids, ellipsoidSpec{
			Center:   shape.Center,
			SemiAxes: shape.SemiAxes,
			Material: shape.Material,
		})
	}
	for _, shape := range s.Rhombohedrons {
		file.Rhombohedrons = append(file.Rhombohedrons, rhombohedronSpec{
			Corner:   shape.Corner,
			Length:   shape.Length,
			Width:    shape.Width,
			Height:   shape.Height,
			Material: shape.Material,
		})
	}
	for _, shape := range s.Polygons {
		file.Polygons = append(file.Polygons, polygonSpec{
			Vertices: shape.Vertices,
			Material: shape.Material,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&file); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
