package postfx

// Fullscreen passes draw a render texture with DrawTexturePro, so every fragment shader
// uses raylib's default vertex shader inputs: texture0 and fragTexCoord.
const (
	// brightFS keeps texels whose luma exceeds threshold (soft knee of smoothWidth).
	brightFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform float threshold;
uniform float smoothWidth;
out vec4 finalColor;
void main() {
  vec4 texel = texture(texture0, fragTexCoord);
  float v = dot(texel.rgb, vec3(0.299, 0.587, 0.114));
  float alpha = smoothstep(threshold, threshold + smoothWidth, v);
  finalColor = mix(vec4(0.0), texel, alpha);
}
`

	// blurFS is one direction of a separable gaussian; weights[0] is the center tap.
	blurFS = `#version 330
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec2 invSize;
uniform vec2 direction;
uniform float kernelRadius;
uniform float weights[11];
out vec4 finalColor;
void main() {
  float weightSum = weights[0];
  vec3 sum = texture(texture0, fragTexCoord).rgb * weightSum;
  for (int i = 1; i < 11; i++) {
    if (float(i) >= kernelRadius) {
      break;
    }
    float w = weights[i];
    vec2 offset = direction * invSize * float(i);
    sum += texture(texture0, fragTexCoord + offset).rgb * w;
    sum += texture(texture0, fragTexCoord - offset).rgb * w;
    weightSum += 2.0 * w;
  }
  finalColor = vec4(sum / weightSum, 1.0);
}
`

	// compositeFS adds the accumulated mips to the scene and applies ACES filmic tone mapping.
	// bloomTexture holds the mips pre-weighted by factor/sum(factors), so strength is
	// uploaded already multiplied by sum(factors).
	compositeFS = `#version 330
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform sampler2D bloomTexture;
uniform float strength;
uniform float bloomOn;
out vec4 finalColor;

vec3 toLinear(vec3 c) {
  return mix(c / 12.92, pow((c + 0.055) / 1.055, vec3(2.4)), step(vec3(0.04045), c));
}

vec3 toSRGB(vec3 c) {
  return mix(c * 12.92, 1.055 * pow(c, vec3(1.0 / 2.4)) - 0.055, step(vec3(0.0031308), c));
}

vec3 rrtAndOdtFit(vec3 v) {
  vec3 a = v * (v + 0.0245786) - 0.000090537;
  vec3 b = v * (0.983729 * v + 0.4329510) + 0.238081;
  return a / b;
}

vec3 aces(vec3 color) {
  const mat3 inputMat = mat3(
    vec3(0.59719, 0.07600, 0.02840),
    vec3(0.35458, 0.90834, 0.13383),
    vec3(0.04823, 0.01566, 0.83777));
  const mat3 outputMat = mat3(
    vec3( 1.60475, -0.10208, -0.00327),
    vec3(-0.53108,  1.10813, -0.07276),
    vec3(-0.07367, -0.00605,  1.07602));
  color /= 0.6;
  color = inputMat * color;
  color = rrtAndOdtFit(color);
  color = outputMat * color;
  return clamp(color, 0.0, 1.0);
}

void main() {
  vec3 scene = toLinear(texture(texture0, fragTexCoord).rgb);
  vec3 bloom = texture(bloomTexture, fragTexCoord).rgb;
  vec3 color = scene + bloomOn * strength * toLinear(bloom);
  finalColor = vec4(toSRGB(aces(color)), 1.0);
}
`
)
