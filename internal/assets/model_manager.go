package assets

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Kind — вид сущности на арене, для каждого своя модель.
type Kind string

const (
	KindPlayer   Kind = "player"
	KindZombie   Kind = "zombie"
	KindBonfire  Kind = "bonfire"
	KindBullet   Kind = "bullet"
	KindPickup   Kind = "pickup"
	KindParticle Kind = "particle"
)

// AllKinds — все виды, модели которых загружает Load.
var AllKinds = []Kind{KindPlayer, KindZombie, KindBonfire, KindBullet, KindPickup, KindParticle}

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей.
// Если в assets/models есть <kind>.obj, берётся он, иначе простая фигура.
type ModelManager struct {
	dir    string
	models map[Kind]rl.Model
	log    *zap.Logger
}

// NewModelManager создает новый экземпляр ModelManager. dir — корень ассетов.
func NewModelManager(dir string, log *zap.Logger) *ModelManager {
	return &ModelManager{
		dir:    dir,
		models: make(map[Kind]rl.Model),
		log:    log,
	}
}

// primitiveMesh строит фигуру по умолчанию. Размеры в единицах арены,
// модели рисуются с масштабом 1.
func primitiveMesh(kind Kind) rl.Mesh {
	switch kind {
	case KindPlayer:
		return rl.GenMeshCylinder(0.4, 1.6, 12)
	case KindZombie:
		return rl.GenMeshCube(0.7, 1.4, 0.7)
	case KindBonfire:
		return rl.GenMeshCone(0.9, 1.5, 10)
	case KindBullet:
		return rl.GenMeshSphere(1, 8, 8) // масштабируется размером снаряда
	case KindPickup:
		return rl.GenMeshCube(0.6, 0.6, 0.6)
	default:
		return rl.GenMeshCube(0.15, 0.15, 0.15)
	}
}

// loadSingleModel безопасно загружает одну модель.
func (m *ModelManager) loadSingleModel(kind Kind) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("raylib panicked while loading model, using primitive",
				zap.String("kind", string(kind)), zap.Any("panic", r))
			m.models[kind] = rl.LoadModelFromMesh(primitiveMesh(kind))
		}
	}()
	if _, ok := m.models[kind]; ok {
		return
	}

	modelPath := filepath.Join(m.dir, "models", fmt.Sprintf("%s.obj", kind))
	if _, err := os.Stat(modelPath); err == nil {
		model := rl.LoadModel(modelPath)
		if model.MeshCount > 0 {
			m.models[kind] = model
			m.log.Info("model loaded", zap.String("kind", string(kind)), zap.String("path", modelPath))
			return
		}
		m.log.Warn("model file is empty, using primitive", zap.String("path", modelPath))
	}
	m.models[kind] = rl.LoadModelFromMesh(primitiveMesh(kind))
}

// Load загружает модели всех видов. Вызывать после rl.InitWindow.
func (m *ModelManager) Load() {
	for _, kind := range AllKinds {
		m.loadSingleModel(kind)
	}
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for kind, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, kind)
	}
	m.log.Debug("all models unloaded")
}

// GetModel возвращает модель по виду.
func (m *ModelManager) GetModel(kind Kind) (rl.Model, bool) {
	model, ok := m.models[kind]
	return model, ok
}
