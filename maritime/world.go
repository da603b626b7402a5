package maritime

import (
	"bytes"
	"math"
	"text/template"
)

// WorldName is the name of the generated SDF world. The spawner's
// service paths (/world/maritime_sar/create) depend on it.
const WorldName = "maritime_sar"

// OceanColors derives the ocean plane material from wave height.
// Rougher water reads darker and greener; the blend saturates at 3 m.
func OceanColors(waveHeight float64) (ambient, diffuse Color) {
	waveFactor := math.Min(waveHeight/3.0, 1.0)
	ambient = Color{
		0.2 - waveFactor*0.1,
		0.3 - waveFactor*0.05,
		0.5 - waveFactor*0.1,
	}
	diffuse = Color{
		0.2 - waveFactor*0.1,
		0.4 - waveFactor*0.15,
		0.7 - waveFactor*0.2,
	}
	return ambient, diffuse
}

// worldParams carries everything the SDF template needs.
type worldParams struct {
	Ambient      Color
	Sky          Color
	SunIntensity float64
	OceanAmbient Color
	OceanDiffuse Color
	FogEnabled   bool
	FogColor     Color
	FogDensity   float64
	FogEnd       float64
}

// RenderWorld produces the SDF 1.8 world document for a preset.
func RenderWorld(cfg *EnvConfig) (string, error) {
	oceanAmbient, oceanDiffuse := OceanColors(cfg.Ocean.WaveHeight)
	params := worldParams{
		Ambient:      *cfg.Lighting.AmbientLight,
		Sky:          *cfg.Lighting.SkyColor,
		SunIntensity: cfg.Lighting.SunIntensity,
		OceanAmbient: oceanAmbient,
		OceanDiffuse: oceanDiffuse,
		FogEnabled:   cfg.Visibility.FogEnabled,
		FogColor:     *cfg.Visibility.FogColor,
		FogDensity:   cfg.Visibility.FogDensity,
		FogEnd:       cfg.Visibility.RenderDistance,
	}

	var buf bytes.Buffer
	if err := worldTemplate.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var worldTemplate = template.Must(template.New("world").Parse(`<?xml version="1.0" ?>
<sdf version="1.8">
  <world name="maritime_sar">

    <physics name="1ms" type="ignored">
      <max_step_size>0.001</max_step_size>
      <real_time_factor>1.0</real_time_factor>
    </physics>

    <plugin
      filename="gz-sim-physics-system"
      name="gz::sim::systems::Physics">
    </plugin>

    <plugin
      filename="gz-sim-user-commands-system"
      name="gz::sim::systems::UserCommands">
    </plugin>

    <plugin
      filename="gz-sim-scene-broadcaster-system"
      name="gz::sim::systems::SceneBroadcaster">
    </plugin>

    <scene>
      <ambient>{{.Ambient}} 1</ambient>
      <background>{{.Sky}} 1</background>
      <sky></sky>
      <grid>false</grid>{{if .FogEnabled}}
      <fog>
        <type>linear</type>
        <color>{{.FogColor}} 1</color>
        <density>{{.FogDensity}}</density>
        <start>10</start>
        <end>{{.FogEnd}}</end>
      </fog>{{end}}
    </scene>

    <light type="directional" name="sun">
      <cast_shadows>true</cast_shadows>
      <pose>0 0 100 0 0 0</pose>
      <diffuse>{{.SunIntensity}} {{.SunIntensity}} {{.SunIntensity}} 1</diffuse>
      <specular>0.2 0.2 0.2 1</specular>
      <attenuation>
        <range>1000</range>
      </attenuation>
      <direction>-0.5 0.1 -0.9</direction>
    </light>

    <model name="ocean_surface">
      <static>true</static>
      <link name="ocean_link">
        <pose>0 0 0 0 0 0</pose>
        <visual name="ocean_visual">
          <geometry>
            <plane>
              <size>1000 1000</size>
              <normal>0 0 1</normal>
            </plane>
          </geometry>
          <material>
            <ambient>{{.OceanAmbient}} 1</ambient>
            <diffuse>{{.OceanDiffuse}} 1</diffuse>
            <specular>0.8 0.8 0.8 1</specular>
          </material>
        </visual>
        <collision name="ocean_collision">
          <geometry>
            <plane>
              <size>1000 1000</size>
              <normal>0 0 1</normal>
            </plane>
          </geometry>
          <surface>
            <friction>
              <ode>
                <mu>0.01</mu>
                <mu2>0.01</mu2>
              </ode>
            </friction>
          </surface>
        </collision>
      </link>
    </model>

    <gui fullscreen="0">
      <plugin filename="GzScene3D" name="3D View">
        <gz-gui>
          <title>3D View</title>
          <property type="bool" key="showTitleBar">false</property>
          <property type="string" key="state">docked</property>
        </gz-gui>

        <engine>ogre2</engine>
        <scene>scene</scene>
        <ambient_light>{{.Ambient}}</ambient_light>
        <background_color>{{.Sky}}</background_color>
        <camera_pose>50 -50 30 0 0.3 2.35</camera_pose>
      </plugin>

      <plugin filename="WorldControl" name="World control">
        <gz-gui>
          <title>World control</title>
          <property type="bool" key="showTitleBar">false</property>
          <property type="bool" key="resizable">false</property>
          <property type="double" key="height">72</property>
          <property type="double" key="width">121</property>
          <property type="double" key="z">1</property>

          <property type="string" key="state">floating</property>
          <anchors target="3D View">
            <line own="left" target="left"/>
            <line own="bottom" target="bottom"/>
          </anchors>
        </gz-gui>

        <play_pause>true</play_pause>
        <step>true</step>
        <start_paused>false</start_paused>
      </plugin>

      <plugin filename="WorldStats" name="World stats">
        <gz-gui>
          <title>World stats</title>
          <property type="bool" key="showTitleBar">false</property>
          <property type="bool" key="resizable">false</property>
          <property type="double" key="height">110</property>
          <property type="double" key="width">290</property>
          <property type="double" key="z">1</property>

          <property type="string" key="state">floating</property>
          <anchors target="3D View">
            <line own="right" target="right"/>
            <line own="bottom" target="bottom"/>
          </anchors>
        </gz-gui>

        <sim_time>true</sim_time>
        <real_time>true</real_time>
        <real_time_factor>true</real_time_factor>
        <iterations>true</iterations>
      </plugin>

      <plugin filename="EntityTree" name="Entity tree">
      </plugin>

    </gui>

  </world>
</sdf>
`))
