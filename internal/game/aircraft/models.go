package aircraft

import (
	"landmark-flight/internal/scene"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// builder assembles one model. Parts that repeat (windows, struts) share a
// geometry and material, mirroring how the wings are cloned.
type builder struct {
	ac   *Aircraft
	body *scene.Node
}

func (b *builder) part(name string, g *scene.Geometry, m *scene.Material) *scene.Node {
	n := scene.NewMesh(name, g, m)
	b.body.Add(n)
	return n
}

func (b *builder) spin(n *scene.Node, axis mgl64.Vec3, rate float64) {
	b.ac.spinners = append(b.ac.spinners, spinner{node: n, axis: axis, rate: rate})
}

func glass() *scene.Material {
	return scene.NewMaterial(scene.Hex(0x88ccff)).WithOpacity(0.72)
}

func glow(c uint32) *scene.Material {
	return scene.NewGlowMaterial(scene.Hex(c), 1.2).WithOpacity(0.85)
}

// cylinderZ lays a Y-aligned cylinder along the fuselage axis.
func (b *builder) cylinderZ(name string, top, bottom, length float64, m *scene.Material) *scene.Node {
	return b.part(name, scene.NewCylinder(top, bottom, length, 16), m).Rotate(axisX, math.Pi/2)
}

func (b *builder) mirrored(n *scene.Node) {
	c := n.Clone()
	c.Position = mgl64.Vec3{-n.Position.X(), n.Position.Y(), n.Position.Z()}
	b.body.Add(c)
}

func (b *builder) jetliner() {
	skin := scene.NewMaterial(scene.Hex(0xe8ecf2))
	accent := scene.NewMaterial(scene.Hex(0x3b82f6))
	dark := scene.NewMaterial(scene.Hex(0x1e3a5f))

	b.cylinderZ("fuselage", 2.8, 2.4, 28, skin)
	b.part("nose", scene.NewSphere(2.8, 16), skin).At(0, 0, 14).Scaled(1, 1, 0.9)
	b.part("tail-cone", scene.NewCone(2.4, 6, 16), skin).At(0, 0, -17).Rotate(axisX, -math.Pi/2)
	b.part("cockpit", scene.NewSphere(2.2, 12), glass()).At(0, 1.4, 12).Scaled(1, 0.5, 1)

	wing := b.part("wing", scene.NewBox(14, 0.6, 4), skin).At(7.5, -0.3, 2)
	wing.Rotate(axisY, -0.18)
	b.mirrored(wing)
	b.part("stabilizer", scene.NewBox(10, 0.5, 3), skin).At(0, 0, -15)
	b.part("fin", scene.NewBox(0.4, 7, 3.5), accent).At(0, 3.8, -15.5)

	engine := scene.NewCylinder(1.2, 1.4, 5, 16)
	intake := scene.NewTorus(1.25, 0.15, 24)
	intakeMat := scene.NewMaterial(scene.Hex(0x94a3b8))
	fan := scene.NewBox(2.2, 0.2, 0.1)
	exhaust := glow(0x66aaff)
	for _, x := range []float64{-6, 6} {
		b.part("engine", engine, dark).At(x, -1.8, 1).Rotate(axisX, math.Pi/2)
		b.part("intake", intake, intakeMat).At(x, -1.8, 3.5)
		b.spin(b.part("fan", fan, dark).At(x, -1.8, 3.4), axisZ, 18)
		b.part("exhaust", scene.NewCircle(1, 16), exhaust).At(x, -1.8, -1.6).Rotate(axisX, math.Pi/2)
	}

	window := scene.NewCircle(0.28, 8)
	windowMat := glass()
	for z := -8.0; z <= 10; z += 1.5 {
		for _, x := range []float64{2.78, -2.78} {
			b.part("window", window, windowMat).At(x, 0.6, z).Rotate(axisZ, math.Pi/2)
		}
	}

	b.landingGear(scene.NewMaterial(scene.Hex(0x333333)), scene.NewMaterial(scene.Hex(0x1a1a1a)),
		[]mgl64.Vec3{{0, -3.8, 5}, {-4, -3.8, -4}, {4, -3.8, -4}})
}

func (b *builder) fighter() {
	skin := scene.NewMaterial(scene.Hex(0x64748b))
	accent := scene.NewMaterial(scene.Hex(0xf97316))
	dark := scene.NewMaterial(scene.Hex(0x1f2937))

	b.cylinderZ("fuselage", 1.5, 2.2, 22, skin)
	b.part("nose", scene.NewCone(1.5, 7, 16), skin).At(0, 0, 14.5).Rotate(axisX, math.Pi/2)
	b.part("pitot", scene.NewCylinder(0.08, 0.08, 3, 8), dark).At(0, 0, 18.5).Rotate(axisX, math.Pi/2)
	b.part("canopy", scene.NewSphere(1.4, 12), glass()).At(0, 1.3, 7).Scaled(1, 0.7, 2)

	wing := b.part("delta-wing", scene.NewBox(9, 0.35, 8), skin).At(5, -0.2, -1)
	wing.Rotate(axisY, -0.35)
	b.mirrored(wing)
	stripe := b.part("wing-stripe", scene.NewBox(8, 0.02, 0.5), accent).At(5, 0.1, -0.5)
	b.mirrored(stripe)

	fin := b.part("fin", scene.NewBox(0.3, 5, 4), skin).At(1.4, 3, -8)
	fin.Rotate(axisZ, -0.25)
	b.mirrored(fin)
	b.part("tailplane", scene.NewBox(9, 0.3, 3), skin).At(0, 0, -9.5)

	nozzle := scene.NewCylinder(1.1, 1.3, 2.5, 16)
	flame := glow(0xff7a1a)
	for _, x := range []float64{-1, 1} {
		b.part("nozzle", nozzle, dark).At(x, 0, -11.5).Rotate(axisX, math.Pi/2)
		b.part("afterburner", scene.NewCircle(0.9, 16), flame).At(x, 0, -12.8).Rotate(axisX, math.Pi/2)
	}
	b.part("intake", scene.NewBox(1.2, 1.4, 4), dark).At(2.2, -0.4, 4)
	b.part("intake", scene.NewBox(1.2, 1.4, 4), dark).At(-2.2, -0.4, 4)
}

func (b *builder) biplane() {
	canvas := scene.NewMaterial(scene.Hex(0x16a34a))
	wood := scene.NewMaterial(scene.Hex(0x92400e))
	cream := scene.NewMaterial(scene.Hex(0xfef3c7))

	b.cylinderZ("fuselage", 1.6, 1.0, 14, canvas)
	b.part("cowling", scene.NewCylinder(1.7, 1.6, 2, 16), cream).At(0, 0, 7.5).Rotate(axisX, math.Pi/2)
	b.part("upper-wing", scene.NewBox(20, 0.35, 3.2), cream).At(0, 3, 1.5)
	b.part("lower-wing", scene.NewBox(18, 0.35, 3), cream).At(0, -1.2, 1.5)

	strut := scene.NewCylinder(0.12, 0.12, 4.2, 6)
	for _, x := range []float64{-7, -3, 3, 7} {
		b.part("strut", strut, wood).At(x, 0.9, 1.5)
	}
	b.part("cockpit", scene.NewTorus(0.9, 0.2, 16), wood).At(0, 1.6, -1).Rotate(axisX, math.Pi/2)
	b.part("tailplane", scene.NewBox(6, 0.25, 2), cream).At(0, 0.3, -6.5)
	b.part("rudder", scene.NewBox(0.25, 3, 2), canvas).At(0, 1.8, -6.8)

	hub := b.part("propeller-hub", scene.NewSphere(0.45, 8), wood).At(0, 0, 8.7)
	blade := scene.NewMesh("blade", scene.NewBox(0.35, 6, 0.15), wood)
	hub.Add(blade)
	b.spin(hub, axisZ, 30)

	b.landingGear(wood, scene.NewMaterial(scene.Hex(0x1a1a1a)),
		[]mgl64.Vec3{{-2, -3, 4}, {2, -3, 4}})
}

func (b *builder) helicopter() {
	paint := scene.NewMaterial(scene.Hex(0xdc2626))
	dark := scene.NewMaterial(scene.Hex(0x1f2937))
	white := scene.NewMaterial(scene.Hex(0xf8fafc))

	b.part("cabin", scene.NewSphere(3, 14), paint).At(0, 0, 1).Scaled(1, 0.85, 1.6)
	b.part("stripe", scene.NewBox(6.2, 0.05, 0.8), white).At(0, 0.4, 1)
	b.part("canopy", scene.NewSphere(2.4, 12), glass()).At(0, 0.8, 3.5).Scaled(1, 0.7, 1.1)
	b.part("engine-housing", scene.NewBox(2.2, 1.4, 3), dark).At(0, 2.6, 0)
	b.cylinderZ("tail-boom", 0.35, 0.7, 9, paint).Position = mgl64.Vec3{0, 0.6, -7}
	b.part("tail-fin", scene.NewBox(0.2, 2.5, 1.4), paint).At(0, 1.6, -11.2)

	mast := b.part("rotor-mast", scene.NewCylinder(0.2, 0.2, 1.2, 8), dark).At(0, 3.8, 0)
	rotor := scene.NewGroup("main-rotor").At(0, 0.6, 0)
	bladeGeo := scene.NewBox(0.5, 0.08, 18)
	rotor.Add(scene.NewMesh("blade", bladeGeo, dark))
	rotor.Add(scene.NewMesh("blade", bladeGeo, dark).Rotate(axisY, math.Pi/2))
	mast.Add(rotor)
	b.spin(rotor, axisY, 24)

	tailRotor := scene.NewGroup("tail-rotor").At(0.4, 1.8, -11.2)
	tailRotor.Add(scene.NewMesh("blade", scene.NewBox(0.05, 3, 0.3), dark))
	b.body.Add(tailRotor)
	b.spin(tailRotor, axisX, 40)

	skid := scene.NewCylinder(0.15, 0.15, 8, 8)
	for _, x := range []float64{-1.8, 1.8} {
		b.part("skid", skid, dark).At(x, -3, 1).Rotate(axisX, math.Pi/2)
	}
}

func (b *builder) landingGear(strutMat, wheelMat *scene.Material, wheels []mgl64.Vec3) {
	strut := scene.NewCylinder(0.15, 0.15, 2.5, 8)
	wheel := scene.NewTorus(0.7, 0.25, 16)
	for _, w := range wheels {
		b.part("gear-strut", strut, strutMat).At(w.X(), w.Y()+1.3, w.Z())
		b.part("wheel", wheel, wheelMat).At(w.X(), w.Y(), w.Z()).Rotate(axisY, math.Pi/2)
	}
}

